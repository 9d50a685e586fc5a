// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package synth

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/nav"
	"github.com/zimsendapi/docs/internal/openapi"
)

func parse(t *testing.T, doc string) *openapi.Catalog {
	t.Helper()
	cat, err := openapi.Parse([]byte(doc), "inline.yaml")
	require.NoError(t, err)
	return cat
}

func TestSynthesize_SMSScenario(t *testing.T) {
	cat := parse(t, `
openapi: 3.0.0
paths:
  /sms:
    post:
      tags: [SMS]
      summary: Envoyer un SMS
  /sms/{id}:
    get:
      tags: [SMS]
      summary: Obtenir le statut d'un SMS
`)
	cats, err := Synthesize(cat, Options{})
	require.NoError(t, err)
	require.Len(t, cats, 1)

	sms := cats[0]
	assert.Equal(t, "SMS", sms.Label)
	require.NotNil(t, sms.Link)
	assert.Equal(t, "sms-overview", sms.Link.ID)
	assert.Nil(t, sms.Collapsed)

	require.Len(t, sms.Items, 2)
	first := sms.Items[0].(*nav.DocRef)
	second := sms.Items[1].(*nav.DocRef)
	assert.Equal(t, &nav.DocRef{ID: "envoyer-un-sms", Label: "Envoyer un SMS", ClassName: "api-method post"}, first)
	assert.Equal(t, &nav.DocRef{ID: "obtenir-le-statut-dun-sms", Label: "Obtenir le statut d'un SMS", ClassName: "api-method get"}, second)
}

func TestSynthesize_SlugCollision(t *testing.T) {
	cat := parse(t, `
openapi: 3.0.0
paths:
  /a:
    post:
      tags: [Webhooks]
      summary: Tester
  /b:
    post:
      tags: [Webhooks]
      summary: Tester
`)
	_, err := Synthesize(cat, Options{})
	require.Error(t, err)
	assert.Equal(t, errors.KindSlugCollision, errors.GetKind(err))
	assert.Contains(t, err.Error(), `"tester"`)

	attrs := errors.GetAttributes(err)
	assert.Equal(t, "tester", attrs["id"])
	assert.Equal(t, "Webhooks", attrs["tag"])
	assert.Equal(t, []string{"Tester", "Tester"}, attrs["labels"])
}

func TestSynthesize_CollisionAcrossAccents(t *testing.T) {
	cat := parse(t, `
openapi: 3.0.0
paths:
  /a:
    get:
      tags: [OTP]
      summary: Vérifier un code
  /b:
    post:
      tags: [OTP]
      summary: Verifier un code
`)
	_, err := Synthesize(cat, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Vérifier un code")
	assert.Contains(t, err.Error(), "Verifier un code")
}

func TestSynthesize_CollisionAcrossTags(t *testing.T) {
	cat := parse(t, `
openapi: 3.0.0
paths:
  /sms/test:
    post:
      tags: [SMS]
      summary: Tester
  /webhooks/test:
    delete:
      tags: [Webhooks]
      summary: Tester
`)
	_, err := Synthesize(cat, Options{BasePrefix: "api-reference"})
	require.Error(t, err)
	assert.Equal(t, errors.KindSlugCollision, errors.GetKind(err))
	assert.Contains(t, err.Error(), `(tag "SMS")`)
	assert.Contains(t, err.Error(), `(tag "Webhooks")`)

	attrs := errors.GetAttributes(err)
	assert.Equal(t, "tester", attrs["id"])
	assert.Equal(t, []string{"SMS", "Webhooks"}, attrs["tags"])
	assert.Equal(t, []string{"Tester", "Tester"}, attrs["labels"])
}

func TestSynthesize_OverviewCollision(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		id   string
	}{
		{
			name: "tags with the same slug",
			doc: `
openapi: 3.0.0
paths:
  /a:
    get:
      tags: [SMS]
      summary: Envoyer
  /b:
    get:
      tags: [Sms]
      summary: Lister
`,
			id: "sms-overview",
		},
		{
			name: "operation named like an overview",
			doc: `
openapi: 3.0.0
paths:
  /a:
    get:
      tags: [SMS]
      summary: SMS overview
`,
			id: "sms-overview",
		},
		{
			name: "operation named like the api overview",
			doc: `
openapi: 3.0.0
paths:
  /a:
    get:
      tags: [SMS]
      summary: API Overview
`,
			id: "api-overview",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Synthesize(parse(t, tt.doc), Options{})
			require.Error(t, err)
			assert.Equal(t, errors.KindSlugCollision, errors.GetKind(err))
			assert.Equal(t, tt.id, errors.GetAttributes(err)["id"])
		})
	}
}

func TestSynthesize_SharedOperation(t *testing.T) {
	cat := parse(t, `
openapi: 3.0.0
paths:
  /otp/sms:
    post:
      tags: [SMS, OTP]
      summary: Envoyer un OTP
`)
	cats, err := Synthesize(cat, Options{})
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, cats[0].Items, cats[1].Items)
}

func TestSynthesize_EmptyIdentifier(t *testing.T) {
	cat := parse(t, `
openapi: 3.0.0
paths:
  /a:
    get:
      tags: [SMS]
      summary: "!!!"
`)
	_, err := Synthesize(cat, Options{})
	require.Error(t, err)
	assert.Equal(t, errors.KindLoad, errors.GetKind(err))
	assert.Contains(t, err.Error(), "no usable characters")
	assert.Equal(t, "/a", errors.GetAttributes(err)["path"])

	cat = parse(t, `
openapi: 3.0.0
paths:
  /a:
    get:
      tags: ["!!!"]
      summary: Envoyer
`)
	_, err = Synthesize(cat, Options{})
	require.Error(t, err)
	assert.Equal(t, errors.KindLoad, errors.GetKind(err))
	assert.Equal(t, "!!!", errors.GetAttributes(err)["tag"])
}

func TestSynthesize_ZimSendWithPrefix(t *testing.T) {
	cat, err := openapi.Load(filepath.Join("..", "openapi", "testdata", "zimsend.yaml"))
	require.NoError(t, err)

	opts := Options{BasePrefix: "api-reference"}
	cats, err := Synthesize(cat, opts)
	require.NoError(t, err)

	sidebar := APISidebar(cats, opts)
	require.Len(t, sidebar, 4)
	assert.Equal(t, &nav.DocRef{ID: "api-reference/api-overview"}, sidebar[0])

	webhooks := sidebar[3].(*nav.Category)
	assert.Equal(t, "Webhooks", webhooks.Label)
	assert.Equal(t, "api-reference/webhooks-overview", webhooks.Link.ID)

	var got []string
	for _, n := range webhooks.Items {
		d := n.(*nav.DocRef)
		got = append(got, d.ID+" "+d.ClassName)
	}
	assert.Equal(t, []string{
		"api-reference/configurer-un-webhook api-method post",
		"api-reference/liste-des-webhooks api-method get",
		"api-reference/logs-des-webhooks api-method get",
		"api-reference/tester-un-webhook api-method post",
		"api-reference/supprimer-un-webhook api-method delete",
	}, got)

	ids := GeneratedIDs(cats, opts)
	assert.Len(t, ids, 1+3+13)
	assert.Contains(t, ids, "api-reference/otp-overview")
	assert.Contains(t, ids, "api-reference/generer-et-envoyer-un-code-otp")
}

func TestSynthesize_Collapsed(t *testing.T) {
	cat := parse(t, "openapi: 3.0.0\npaths:\n  /a:\n    get:\n      tags: [SMS]\n      summary: A\n")
	cats, err := Synthesize(cat, Options{Collapsed: nav.Bool(true)})
	require.NoError(t, err)
	require.NotNil(t, cats[0].Collapsed)
	assert.True(t, *cats[0].Collapsed)
}

func TestOptions_IDs(t *testing.T) {
	opts := Options{BasePrefix: "api-reference/"}
	assert.Equal(t, "api-reference/x", opts.DocID("x"))
	assert.Equal(t, "api-reference/mes-webhooks-overview", opts.OverviewID("Mes Webhooks"))
	assert.Equal(t, "api-reference/api-overview", opts.APIOverviewID())
	assert.Equal(t, "sms-overview", Options{}.OverviewID("SMS"))
}

func TestMethodClass(t *testing.T) {
	want := map[openapi.Method]string{
		openapi.MethodGet:    "api-method get",
		openapi.MethodPost:   "api-method post",
		openapi.MethodPut:    "api-method put",
		openapi.MethodDelete: "api-method delete",
		openapi.MethodPatch:  "api-method patch",
	}
	for m, class := range want {
		assert.Equal(t, class, MethodClass(m))
	}
}

// genDoc draws an OpenAPI document with distinct summaries per tag and returns
// it with the expected tag order and per-tag summaries.
func genDoc(t *rapid.T) (string, []string, map[string][]string) {
	tagCount := rapid.IntRange(1, 4).Draw(t, "tags")
	opCount := rapid.IntRange(1, 12).Draw(t, "ops")
	methods := []string{"get", "post", "put", "delete", "patch"}

	var b strings.Builder
	b.WriteString("openapi: 3.0.0\npaths:\n")
	var order []string
	perTag := make(map[string][]string)
	for i := 0; i < opCount; i++ {
		tag := fmt.Sprintf("Tag%d", rapid.IntRange(0, tagCount-1).Draw(t, "tag"))
		method := rapid.SampledFrom(methods).Draw(t, "method")
		summary := fmt.Sprintf("Operation numero %d", i)
		if _, ok := perTag[tag]; !ok {
			order = append(order, tag)
		}
		perTag[tag] = append(perTag[tag], summary)
		fmt.Fprintf(&b, "  /p%d:\n    %s:\n      tags: [%s]\n      summary: %s\n", i, method, tag, summary)
	}
	return b.String(), order, perTag
}

func TestSynthesize_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		doc, order, perTag := genDoc(t)
		cat, err := openapi.Parse([]byte(doc), "gen.yaml")
		if err != nil {
			t.Fatalf("parse: %v", err)
		}

		cats, err := Synthesize(cat, Options{BasePrefix: "api"})
		if err != nil {
			t.Fatalf("synthesize: %v", err)
		}
		again, _ := Synthesize(cat, Options{BasePrefix: "api"})
		if !reflect.DeepEqual(cats, again) {
			t.Fatalf("output not deterministic")
		}

		if len(cats) != len(order) {
			t.Fatalf("got %d categories, want %d", len(cats), len(order))
		}
		for i, c := range cats {
			if c.Label != order[i] {
				t.Fatalf("category %d = %q, want %q", i, c.Label, order[i])
			}
			seen := make(map[string]bool)
			for j, n := range c.Items {
				d := n.(*nav.DocRef)
				if seen[d.ID] {
					t.Fatalf("duplicate id %q in %s", d.ID, c.Label)
				}
				seen[d.ID] = true
				if d.Label != perTag[c.Label][j] {
					t.Fatalf("item %d of %s = %q, want %q", j, c.Label, d.Label, perTag[c.Label][j])
				}
				if !strings.HasPrefix(d.ClassName, "api-method ") {
					t.Fatalf("bad class %q", d.ClassName)
				}
			}
		}
	})
}

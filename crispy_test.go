package crispy

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-crispy/pkg/helper"
)

const petstoreDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "Petstore", "version": "1.0.0"},
  "paths": {
    "/pets": {
      "post": {
        "operationId": "createPet",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["name"],
                "properties": {
                  "name": {"type": "string", "title": "Name"},
                  "age": {"type": "integer"}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      },
      "get": {
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

func TestRender_DefaultNode(t *testing.T) {
	form := &Form{Fields: []Field{{Name: "title", Label: "Title"}}}

	h := NewHelper()
	h.Attrs = map[string]string{"action": "/articles"}
	h.Inputs = []Input{helper.Submit("save", "Save")}

	markup, err := Render(context.Background(), form, h, map[string]any{"csrf_token": "tok"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, fragment := range []string{
		`action="/articles"`,
		`name="csrf_token" value="tok"`,
		`name="title"`,
		`value="Save"`,
	} {
		if !strings.Contains(markup, fragment) {
			t.Fatalf("markup missing %q:\n%s", fragment, markup)
		}
	}
}

func TestFormFromOpenAPI(t *testing.T) {
	form, err := FormFromOpenAPI(context.Background(), []byte(petstoreDoc), "createPet")
	if err != nil {
		t.Fatalf("build form: %v", err)
	}

	if len(form.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %v", form.Fields)
	}
	if name, ok := form.Field("name"); !ok || !name.Required {
		t.Fatalf("name field missing or not required: %v %v", name, ok)
	}

	attached, ok := form.Helper.(*Helper)
	if !ok {
		t.Fatalf("expected an attached helper, got %T", form.Helper)
	}
	if attached.Method() != "post" || attached.Action() != "/pets" {
		t.Fatalf("helper not preconfigured: method=%q action=%q", attached.Method(), attached.Action())
	}
	if len(attached.Inputs) != 1 || attached.Inputs[0].Type != "submit" {
		t.Fatalf("expected a default submit input, got %v", attached.Inputs)
	}

	// The attached helper makes the form renderable as-is.
	markup, err := Render(context.Background(), form, nil, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(markup, `action="/pets"`) || !strings.Contains(markup, `name="age"`) {
		t.Fatalf("unexpected markup:\n%s", markup)
	}
}

func TestFormFromOpenAPI_UnknownOperation(t *testing.T) {
	if _, err := FormFromOpenAPI(context.Background(), []byte(petstoreDoc), "nope"); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
}

func TestOpenAPIOperationIDs(t *testing.T) {
	ids, err := OpenAPIOperationIDs(context.Background(), []byte(petstoreDoc))
	if err != nil {
		t.Fatalf("list operations: %v", err)
	}

	want := []string{"createPet", "get:/pets"}
	if len(ids) != len(want) {
		t.Fatalf("unexpected ids: %v", ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected sorted ids %v, got %v", want, ids)
		}
	}
}

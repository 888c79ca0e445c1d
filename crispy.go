// Package crispy renders forms and formsets into pack-templated markup,
// driven by a helper object describing attributes, behaviour flags and an
// optional declarative layout. The root package re-exports the common types
// and offers one-call entry points; advanced callers wire a render.Node
// directly.
package crispy

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	internalopenapi "github.com/goliatone/go-crispy/internal/openapi"
	"github.com/goliatone/go-crispy/pkg/forms"
	"github.com/goliatone/go-crispy/pkg/helper"
	"github.com/goliatone/go-crispy/pkg/render"
)

// Re-exported aliases so most callers only import the root package.
type (
	Field   = forms.Field
	Form    = forms.Form
	Formset = forms.Formset
	Helper  = helper.Helper
	Input   = helper.Input
	Option  = render.Option
)

// NewHelper returns a helper carrying the documented defaults.
func NewHelper() *helper.Helper {
	return helper.New()
}

// NewNode constructs a render node; see the render package options for
// template pack, reload and theme configuration.
func NewNode(options ...render.Option) (*render.Node, error) {
	return render.NewNode(options...)
}

var (
	defaultNodeOnce sync.Once
	defaultNode     *render.Node
	defaultNodeErr  error
)

// Render produces markup for a form or formset using the process-wide default
// node (embedded packs, bootstrap, cached templates). The helper argument may
// be nil, in which case the form's attached helper or an empty default is
// used. Ambient may carry a csrf_token entry that is copied into the
// template context.
func Render(ctx context.Context, formOrFormset forms.FormLike, h *helper.Helper, ambient map[string]any) (string, error) {
	defaultNodeOnce.Do(func() {
		defaultNode, defaultNodeErr = render.NewNode()
	})
	if defaultNodeErr != nil {
		return "", defaultNodeErr
	}
	return defaultNode.Render(ctx, formOrFormset, h, ambient)
}

// FormFromOpenAPI builds a form for the identified operation of an OpenAPI
// document (JSON or YAML bytes). The returned form carries an attached helper
// preconfigured with the operation's endpoint and method, so it renders
// without further setup.
func FormFromOpenAPI(ctx context.Context, document []byte, operationID string) (*forms.Form, error) {
	operations, err := internalopenapi.Operations(ctx, document)
	if err != nil {
		return nil, err
	}
	op, ok := operations[operationID]
	if !ok {
		return nil, fmt.Errorf("crispy: operation %q not found", operationID)
	}

	form, err := op.Form()
	if err != nil {
		return nil, err
	}

	h := helper.New()
	h.FormMethod = strings.ToLower(op.Method)
	h.Attrs = map[string]string{"action": op.Path}
	h.Inputs = []helper.Input{helper.Submit("submit", "Submit")}
	form.Helper = h
	return form, nil
}

// OpenAPIOperationIDs lists the operation ids available in an OpenAPI
// document, sorted alphabetically.
func OpenAPIOperationIDs(ctx context.Context, document []byte) ([]string, error) {
	operations, err := internalopenapi.Operations(ctx, document)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

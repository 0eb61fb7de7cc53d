// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches to
// IR trees by round-tripping through the encoded form.
package patch

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/tinyjson/go-tinyjson/encode"
	"github.com/tinyjson/go-tinyjson/ir"
	"github.com/tinyjson/go-tinyjson/parse"
)

// Apply applies an RFC 6902 patch (an array of operations) to doc and
// returns the patched tree. Neither input is modified.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	opsData, err := encode.String(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch([]byte(opsData))
	if err != nil {
		return nil, err
	}
	docData, err := encode.String(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply([]byte(docData))
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// Merge applies an RFC 7386 merge patch to doc.
func Merge(doc, mergePatch *ir.Node) (*ir.Node, error) {
	docData, err := encode.String(doc)
	if err != nil {
		return nil, err
	}
	patchData, err := encode.String(mergePatch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch([]byte(docData), []byte(patchData))
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

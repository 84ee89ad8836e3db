// Package uec validates, converts, and manipulates UEC ("Unified Entity
// Card") documents: portable, versioned character and persona descriptions
// exchanged between conversational applications.
//
// It provides:
//
// - Structural validation against the v1 ("1.0") and v2 ("2.0") schema
//   generations via Validate/ValidateStrict, with path-qualified Issues
// - Lossy-aware conversion between generations (ConvertV1ToV2, Downgrade,
//   Upgrade) where every dropped field surfaces as a warning
// - Structural Diff and conflict-aware Merge over normalized documents
// - An asset walker (ExtractAssets/RewriteAssets) recognizing URL strings and
//   structured locator objects anywhere in the tree
// - Advisory Lint heuristics
//
// Design policy:
// - Keep only public APIs in the root package; generic value-tree helpers
//   live under internal/jsontree.
// - Documents are plain value trees (map[string]any et al.); every operation
//   returns a new tree and never mutates its input.
// - All operations are pure and synchronous; safe for concurrent use.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	res := uec.Parse(text, false)
//	if !res.OK {
//	    // res.Errors carries "path: message" issues
//	}
//	v2, err := uec.ConvertV1ToV2(res.Value)
//	out, err := uec.Serialize(v2, true)
package uec

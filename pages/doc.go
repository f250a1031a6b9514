// Package pages provides page tree traversal and the page-level inputs of
// content stream interpretation.
//
// # Page Tree
//
// PDF documents organize pages in a tree structure. The [PageTree] type
// navigates this hierarchy:
//
//	tree := pages.NewPageTree(pagesDict)
//	count, _ := tree.Count()
//	page, _ := tree.GetPage(0)  // 0-indexed
//
// Cyclic or absurdly deep /Kids are reported as errors.
//
// # Page Access
//
// The [Page] type represents a single PDF page with:
//
//   - MediaBox and CropBox - page dimensions
//   - Rotate - page rotation (0, 90, 180, 270)
//   - UserUnit - size of a user space unit
//   - Resources - fonts, patterns, graphics states
//   - Contents - content stream bytes
//
// MediaBox, CropBox, Rotate and Resources are inherited from ancestor
// nodes through core.Dict.Inherited.
//
// # Base CTM
//
// [Page.BaseCTM] maps default user space onto a top-left origin device
// space and is the CTM of the implicit initial graphics state.
package pages

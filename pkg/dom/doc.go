// Package dom provides a small server-side document model.
//
// Pages are built as trees of *Element values, mutated on the server and
// rendered to HTML on demand. Elements carry the pieces of state a browser
// DOM would hold for them: attributes, a class list, data-* values, typed
// expando properties and event listeners. Browser events forwarded over
// HTTP are replayed against these listeners, so handlers mutate the same
// tree that is later serialized back to the client.
//
// # Building
//
//	article := dom.NewElement("article").Append(
//		dom.NewElement("h2").SetText(post.Title),
//		dom.NewElement("p").SetText(post.Body),
//	)
//
// Fragments group siblings without a wrapper. Appending a fragment moves its
// children into the target:
//
//	frag := dom.NewFragment()
//	frag.Append(a, b)
//	main.Append(frag) // main now holds a and b; frag is empty
//
// # Events
//
// AddEventListener returns a ListenerHandle which removes exactly that
// registration. Keep handles when listeners have to be re-wired:
//
//	h := button.AddEventListener(dom.EventClick, onClick)
//	...
//	button.RemoveEventListener(h)
//
// # Rendering
//
// *Element implements templ.Component, so it can be passed to any renderer
// accepting templ components:
//
//	err := main.Render(ctx, w)
//
// Elements are not safe for concurrent use. Callers serialize access to a
// tree, typically with one mutex per document.
package dom

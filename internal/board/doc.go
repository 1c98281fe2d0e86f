// Package board implements the post board page: a server-held document with
// a user selector and a main element listing the selected user's posts, each
// with a comment section toggled by a button.
//
// Builders create detached fragments. The Renderer fetches through a Fetcher,
// which logs failures and reports them as nil results, and assembles post
// articles strictly in order. A Page owns one document and its listeners;
// browser events forwarded by htmx are replayed with Page.Change and
// Page.Click, and the affected element is rendered back with MainView or
// ArticleView.
//
// Usage:
//
//	fetch := board.NewFetcher(placeholder.New(), log)
//	sessions := board.NewSessions(fetch, log, board.WithIdleTTL(30*time.Minute))
//	defer sessions.Close()
//
//	page, _ := sessions.Open(ctx)
//	page.Change(ctx, "2")
//	_ = page.MainView().Render(ctx, w)
//
// Comment visibility is a ToggleState stored on each button, so labels are
// only ever derived from state.
package board

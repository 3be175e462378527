package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	u := a.user
	if u == nil {
		return ""
	}
	name := u.Name
	if name == "" {
		name = u.Email
	}
	if n := a.controller.Len(); n > 0 {
		return fmt.Sprintf("(%s %d/%d)", name, min(a.controller.Index()+1, n), n)
	}
	return fmt.Sprintf("(%s)", name)
}

// Root greets the user, resumes the saved session if any and runs the REPL
// until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Quiz de comptabilité (tapez 'help' pour les commandes)")

	user, err := a.identity.CurrentSession(ctx)
	if err != nil {
		a.logger.Error(ctx, "reading session failed", "err", err)
	}
	a.user = user

	_ = a.startQuiz(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

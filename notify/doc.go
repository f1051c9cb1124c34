// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify delivers win notifications to the external email
collaborators, strictly after and outside the claim transaction.

# Contract

Notifications are best-effort. The stock decrement has already committed
by the time DispatchWin runs; nothing here can (or may) undo it. A crash
or unreachable collaborator leaves stock correctly decremented and a
notification possibly unsent - an accepted failure mode, recoverable
only by manual reconciliation. Each send is retried once immediately,
then logged at Warn and dropped.

# Usage

	dispatcher := notify.NewDispatcher(db, cfg)

	// after a successful claim:
	go dispatcher.DispatchWin(shopID, segmentID, segmentTitle, userEmail)

DispatchWin posts:

  - NOTIFY_WIN_URL: {shopId, segmentId, segmentTitle, userEmail} so the
    shop can set the prize aside
  - NOTIFY_CLIENT_URL: {firstName, lastName, email, shopName,
    segmentTitle} so the winner receives their confirmation email

Shop name and participant names are resolved from the local database.
Every dispatch carries an X-Dispatch-ID header (UUID) for correlating
logs with the collaborators' own records.

Leaving both URLs unset disables dispatch entirely; Enabled() lets the
caller skip spawning the goroutine.
*/
package notify

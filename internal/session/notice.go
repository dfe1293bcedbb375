package session

import "time"

// A session carries at most one visible notice; the most recent message
// wins. Notices auto-dismiss after the store's TTL unless dismissed first.

// Notify replaces the session's visible notice and re-arms the auto-dismiss.
func (s *Store) Notify(id, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}

	if sess.noticeTimer != nil {
		sess.noticeTimer.Stop()
	}
	sess.notice = message
	epoch := sess.epoch
	sess.noticeTimer = time.AfterFunc(s.noticeTTL, func() {
		s.clearNotice(id, epoch, message)
	})
	return nil
}

// DismissNotice clears the notice and cancels its pending auto-dismiss.
func (s *Store) DismissNotice(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}

	if sess.noticeTimer != nil {
		sess.noticeTimer.Stop()
		sess.noticeTimer = nil
	}
	sess.notice = ""
	return nil
}

// clearNotice is the auto-dismiss path. It only clears the exact message it
// was armed for; a newer notice has its own timer.
func (s *Store) clearNotice(id string, epoch int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.epoch != epoch || sess.notice != message {
		return
	}
	sess.notice = ""
	sess.noticeTimer = nil
}

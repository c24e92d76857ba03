package platform

import (
	"strings"
	"testing"
	"time"
)

func TestToastXMLTextOnly(t *testing.T) {
	toast := &Toast{Text: "Saved"}
	got := toast.XML()
	if !strings.Contains(got, `template="ToastText01"`) {
		t.Errorf("expected text-only template, got %s", got)
	}
	if !strings.Contains(got, `<text id="1">Saved</text>`) {
		t.Errorf("expected message in text slot, got %s", got)
	}
	if strings.Contains(got, "<image") {
		t.Errorf("expected no image element, got %s", got)
	}
}

func TestToastXMLWithImage(t *testing.T) {
	toast := &Toast{Text: "Saved", ImagePath: "/home/user/.config/screenbell/icon.png"}
	got := toast.XML()
	if !strings.Contains(got, `template="ToastImageAndText01"`) {
		t.Errorf("expected image+text template, got %s", got)
	}
	if !strings.Contains(got, `src="/home/user/.config/screenbell/icon.png"`) {
		t.Errorf("expected image reference, got %s", got)
	}
}

func TestToastXMLEscapesMarkup(t *testing.T) {
	toast := &Toast{Text: `<script>&"hi"`}
	got := toast.XML()
	if strings.Contains(got, "<script>") {
		t.Fatalf("markup not escaped: %s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;&amp;") {
		t.Errorf("unexpected escaping: %s", got)
	}
}

func TestToastXMLIgnoresExpiration(t *testing.T) {
	// Expiration travels outside the XML document.
	toast := &Toast{Text: "x", Expiration: time.Now().Add(time.Minute)}
	if got := toast.XML(); strings.Contains(got, "Expiration") {
		t.Errorf("expiration leaked into payload: %s", got)
	}
}

func TestClosedHandle(t *testing.T) {
	h := newClosedHandle()
	select {
	case _, ok := <-h.Events():
		if ok {
			t.Fatal("expected closed channel, got event")
		}
	case <-time.After(time.Second):
		t.Fatal("events channel not closed")
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

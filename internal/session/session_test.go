// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testCodec() *Codec {
	return NewCodec("0123456789abcdef0123456789abcdef")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := testCodec()

	id := Identity{ID: 42, Name: "Ana", Email: "ana@x.com", Role: "admin"}
	value, err := c.Encode(id)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got := c.Decode(value)
	if got == nil {
		t.Fatal("Decode returned nil for valid value")
	}
	if *got != id {
		t.Errorf("Decode = %+v, want %+v", *got, id)
	}
}

func TestDecodeRejectsTamperedPayload(t *testing.T) {
	c := testCodec()

	value, err := c.Encode(Identity{ID: 7, Name: "User", Email: "u@x.com", Role: "user"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Forge an admin identity with the original signature.
	forged, err := c.Encode(Identity{ID: 7, Name: "User", Email: "u@x.com", Role: "admin"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	forgedPayload, _, _ := strings.Cut(forged, ".")
	_, origSig, _ := strings.Cut(value, ".")

	if got := c.Decode(forgedPayload + "." + origSig); got != nil {
		t.Fatalf("tampered cookie accepted: %+v", got)
	}
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	value, err := testCodec().Encode(Identity{ID: 1, Role: "admin"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	other := NewCodec("another-secret-another-secret-!!")
	if got := other.Decode(value); got != nil {
		t.Fatal("cookie signed with a different secret was accepted")
	}
}

func TestDecodeGarbage(t *testing.T) {
	c := testCodec()

	for _, value := range []string{"", ".", "abc", "abc.def", "%%%.###", "e30.sig"} {
		if got := c.Decode(value); got != nil {
			t.Errorf("Decode(%q) = %+v, want nil", value, got)
		}
	}
}

func TestSetCookieAttributes(t *testing.T) {
	c := testCodec()
	id := Identity{ID: 1, Name: "A", Email: "a@x.com", Role: "user"}

	t.Run("insecure transport", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		if err := c.SetCookie(w, r, id); err != nil {
			t.Fatalf("SetCookie: %v", err)
		}

		cookies := w.Result().Cookies()
		if len(cookies) != 1 {
			t.Fatalf("got %d cookies, want 1", len(cookies))
		}
		cookie := cookies[0]
		if cookie.Name != CookieName {
			t.Errorf("Name = %q", cookie.Name)
		}
		if !cookie.HttpOnly {
			t.Error("cookie is not HttpOnly")
		}
		if cookie.MaxAge != MaxAge {
			t.Errorf("MaxAge = %d, want %d", cookie.MaxAge, MaxAge)
		}
		if cookie.Secure {
			t.Error("cookie should not be Secure on plain HTTP")
		}
		if cookie.SameSite != http.SameSiteLaxMode {
			t.Errorf("SameSite = %v, want Lax", cookie.SameSite)
		}
	})

	t.Run("https origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		r.Header.Set("Origin", "https://iesp.vercel.app")
		if err := c.SetCookie(w, r, id); err != nil {
			t.Fatalf("SetCookie: %v", err)
		}

		cookie := w.Result().Cookies()[0]
		if !cookie.Secure {
			t.Error("cookie should be Secure for https origin")
		}
		if cookie.SameSite != http.SameSiteNoneMode {
			t.Errorf("SameSite = %v, want None", cookie.SameSite)
		}
	})
}

func TestClearCookie(t *testing.T) {
	c := testCodec()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	c.ClearCookie(w, r)

	cookie := w.Result().Cookies()[0]
	if cookie.Value != "" {
		t.Errorf("Value = %q, want empty", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Errorf("MaxAge = %d, want negative so Max-Age=0 is sent", cookie.MaxAge)
	}
}

func TestReadCookie(t *testing.T) {
	c := testCodec()

	value, err := c.Encode(Identity{ID: 9, Name: "B", Email: "b@x.com", Role: "user"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: value})

	got := c.ReadCookie(r)
	if got == nil || got.ID != 9 {
		t.Fatalf("ReadCookie = %+v", got)
	}

	// No cookie at all.
	if got := c.ReadCookie(httptest.NewRequest(http.MethodGet, "/", nil)); got != nil {
		t.Fatalf("ReadCookie without cookie = %+v", got)
	}
}

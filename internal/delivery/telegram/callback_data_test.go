package telegram

import (
	"errors"
	"testing"
)

func TestCallbackRoundTrip(t *testing.T) {
	actions := []callbackAction{
		viewUsersAction{},
		toggleFilterAction{},
		exportAllAction{},
		pageAction{Page: 2, Direction: pagePrev},
		pageAction{Page: 7, Direction: pageNext},
		userDetailsAction{UserID: 123456789012},
	}

	for _, action := range actions {
		data := action.callbackData()
		if len(data) > 64 {
			t.Errorf("callback data juda uzun (%d bayt): %q", len(data), data)
		}
		decoded, err := decodeCallback(data)
		if err != nil {
			t.Fatalf("decode %q: %v", data, err)
		}
		if decoded != action {
			t.Errorf("data=%q: kutilgan=%#v, natija=%#v", data, action, decoded)
		}
	}
}

func TestDecodeLegacyPayloads(t *testing.T) {
	tests := []struct {
		data     string
		expected callbackAction
	}{
		{"prev_page:2", pageAction{Page: 2, Direction: pagePrev}},
		{"next_page:3", pageAction{Page: 3, Direction: pageNext}},
		{"user_details:123", userDetailsAction{UserID: 123}},
		{"view_users", viewUsersAction{}},
		{"toggle_filter", toggleFilterAction{}},
	}

	for _, test := range tests {
		result, err := decodeCallback(test.data)
		if err != nil {
			t.Errorf("data=%q: xato %v", test.data, err)
			continue
		}
		if result != test.expected {
			t.Errorf("data=%q: kutilgan=%#v, natija=%#v", test.data, test.expected, result)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, data := range []string{"user_details:abc", "user_details:", "user_details", "prev_page:x", "next_page"} {
		_, err := decodeCallback(data)
		if !errors.Is(err, errMalformedCallback) {
			t.Errorf("data=%q: malformed xato kutilgan, natija=%v", data, err)
		}
		var cbErr *callbackError
		if !errors.As(err, &cbErr) || cbErr.kind == "unknown" {
			t.Errorf("data=%q: callbackError turi noto'g'ri: %v", data, err)
		}
	}
}

func TestDecodeUnknown(t *testing.T) {
	for _, data := range []string{"", "order_ready|5", "something:1"} {
		_, err := decodeCallback(data)
		if !errors.Is(err, errUnknownCallback) {
			t.Errorf("data=%q: unknown xato kutilgan, natija=%v", data, err)
		}
	}
}

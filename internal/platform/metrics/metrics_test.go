package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSetUniqueCommunities(t *testing.T) {
	SetUniqueCommunities(7)

	if got := testutil.ToFloat64(uniqueCommunities); got != 7 {
		t.Errorf("unique communities gauge = %v, want 7", got)
	}

	SetUniqueCommunities(9)
	if got := testutil.ToFloat64(uniqueCommunities); got != 9 {
		t.Errorf("unique communities gauge = %v, want 9", got)
	}
}

func TestRecordClientRequest(t *testing.T) {
	RecordClientRequest("Librevault/1.0")
	RecordClientRequest("Librevault/1.0")

	got := testutil.ToFloat64(requestsByClient.WithLabelValues("Librevault/1.0"))
	if got != 2 {
		t.Errorf("requests by client = %v, want 2", got)
	}
}

func TestRecordClientRequest_EmptyUA(t *testing.T) {
	RecordClientRequest("")

	got := testutil.ToFloat64(requestsByClient.WithLabelValues("unknown"))
	if got < 1 {
		t.Errorf("empty UA counted as %v, want >= 1 under \"unknown\"", got)
	}
}

func TestRecordClientRequest_TruncatesLongUA(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	RecordClientRequest(string(long))

	truncated := string(long[:maxUALabelLen])
	got := testutil.ToFloat64(requestsByClient.WithLabelValues(truncated))
	if got < 1 {
		t.Errorf("long UA counted as %v, want >= 1 under truncated label", got)
	}
}

func TestRecordClientRequest_NonUTF8UA(t *testing.T) {
	RecordClientRequest("Librevault/\xff\xfe1.0")

	got := testutil.ToFloat64(requestsByClient.WithLabelValues("Librevault/�1.0"))
	if got < 1 {
		t.Errorf("non-UTF-8 UA counted as %v, want >= 1 under sanitized label", got)
	}
}

func TestRecordClientRequest_TruncationMidRune(t *testing.T) {
	// 63 ASCII bytes followed by a two-byte rune: the cut at maxUALabelLen
	// lands inside the rune, leaving a trailing invalid byte.
	ua := strings.Repeat("a", maxUALabelLen-1) + "é" + strings.Repeat("b", 20)
	RecordClientRequest(ua)

	want := strings.Repeat("a", maxUALabelLen-1) + "�"
	got := testutil.ToFloat64(requestsByClient.WithLabelValues(want))
	if got < 1 {
		t.Errorf("mid-rune truncated UA counted as %v, want >= 1 under %q", got, want)
	}
}

func TestRecordStoreError(t *testing.T) {
	RecordStoreError("put")

	got := testutil.ToFloat64(storeErrorsTotal.WithLabelValues("put"))
	if got < 1 {
		t.Errorf("store errors = %v, want >= 1", got)
	}
}

func TestHandler_ServesExposition(t *testing.T) {
	RecordAnnounce(5*time.Millisecond, 3)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, metric := range []string{
		"lvdiscovery_unique_communities",
		"lvdiscovery_announce_duration_seconds",
		"lvdiscovery_peers_returned",
	} {
		if !strings.Contains(body, metric) {
			t.Errorf("exposition missing %s", metric)
		}
	}
}

package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"TreasureDig/internal/engine"
	"TreasureDig/internal/model"
)

func TestSend_PayloadAndChat(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewTelegramNotifier("token", "chat-42", "")
	n.apiBase = srv.URL

	if err := n.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got["chat_id"] != "chat-42" || got["text"] != "hello" || got["parse_mode"] != "HTML" {
		t.Errorf("unexpected payload: %v", got)
	}
}

func TestSend_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	n := NewTelegramNotifier("token", "chat", "")
	n.apiBase = srv.URL

	if err := n.Send(context.Background(), "x"); err == nil {
		t.Fatal("expected an error on a non-200 response")
	}
}

func TestSendWithRetry_RecoversAfterFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewTelegramNotifier("token", "chat", "")
	n.apiBase = srv.URL

	if err := n.SendWithRetry(context.Background(), "x", 3); err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestFormatRejection(t *testing.T) {
	tests := []struct {
		rej  *engine.Rejection
		want string
	}{
		{&engine.Rejection{Reason: model.RejectPoolPaused}, "paused"},
		{&engine.Rejection{Reason: model.RejectPoolExhausted}, "exhausted"},
		{&engine.Rejection{Reason: model.RejectDailyCapReached}, "cap"},
		{&engine.Rejection{Reason: model.RejectCooldown, CooldownSeconds: 42}, "42s"},
		{&engine.Rejection{Reason: model.RejectInsufficientCredits, Shortfall: 1.5}, "1.50"},
	}
	for _, tt := range tests {
		if got := FormatRejection(tt.rej); !strings.Contains(got, tt.want) {
			t.Errorf("FormatRejection(%s): expected %q in %q", tt.rej.Reason, tt.want, got)
		}
	}
}

func TestFormatLedger_CatalogOrderPositiveOnly(t *testing.T) {
	assets := []model.Asset{
		{ID: "ore", Symbol: "ORE", Name: "Raw Ore", Chain: model.ChainEVM},
		{ID: "gem", Symbol: "GEM", Name: "Cut Gemstone", Chain: model.ChainEVM},
		{ID: "dust", Symbol: "DUST", Name: "Stardust", Chain: model.ChainSolana},
	}
	ledger := map[string]float64{"dust": 2.5, "ore": 1.25, "gem": 0}

	out := FormatLedger(ledger, assets)
	if strings.Contains(out, "GEM") {
		t.Error("zero balances must be hidden")
	}
	if strings.Index(out, "ORE") > strings.Index(out, "DUST") {
		t.Error("expected catalog order, not map order")
	}

	if out := FormatLedger(map[string]float64{}, assets); !strings.Contains(out, "Nothing yet") {
		t.Errorf("expected empty-ledger copy, got %q", out)
	}
}

func TestFormatWithdraw(t *testing.T) {
	if out := FormatWithdraw(0, "0xabc", "0xtx"); !strings.Contains(out, "nothing to withdraw") {
		t.Errorf("expected empty-ledger receipt, got %q", out)
	}
	out := FormatWithdraw(2, "0xabc", "0xtx")
	if !strings.Contains(out, "2 asset(s)") || !strings.Contains(out, "0xtx") {
		t.Errorf("unexpected receipt: %q", out)
	}
}

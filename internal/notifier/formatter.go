package notifier

import (
	"fmt"
	"strings"
	"time"

	"TreasureDig/internal/engine"
	"TreasureDig/internal/model"
)

// FormatPools formats the pool lineup for display.
func FormatPools(pools []model.TreasurePool, digsLeft, dailyCap int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🗺 <b>Treasure Pools</b> | %s\n\n", time.Now().Format("2006-01-02")))
	for _, p := range pools {
		status := ""
		if p.Paused {
			status = " ⏸ paused"
		} else if p.Remaining == 0 {
			status = " 🚫 exhausted"
		}
		b.WriteString(fmt.Sprintf("<b>%s</b> (/dig %s)%s\n", p.Title, p.ID, status))
		b.WriteString(fmt.Sprintf("  cost %.2f | remaining %d | ends %s\n", p.DigCost, p.Remaining, p.Ends))
	}
	b.WriteString(fmt.Sprintf("\n⛏ digs left today: %d/%d\n", digsLeft, dailyCap))
	return b.String()
}

// FormatReward formats a settled dig outcome.
func FormatReward(r model.DigReward, asset model.Asset) string {
	name := asset.Name
	if name == "" {
		name = r.AssetID
	}
	return fmt.Sprintf("💎 <b>Treasure found!</b>\n\n+%.4f %s (%s)\nAdded to your unwithdrawn ledger.", r.Amount, r.Symbol, name)
}

// FormatRejection explains why a dig was refused.
func FormatRejection(rej *engine.Rejection) string {
	switch rej.Reason {
	case model.RejectPoolPaused:
		return "⏸ This pool is paused."
	case model.RejectPoolExhausted:
		return "🚫 This pool is exhausted — nothing left to dig."
	case model.RejectDailyCapReached:
		return "🛑 Daily dig cap reached. Come back tomorrow."
	case model.RejectCooldown:
		return fmt.Sprintf("⏳ Pool on cooldown: %ds remaining.", rej.CooldownSeconds)
	case model.RejectInsufficientCredits:
		return fmt.Sprintf("💸 Not enough credits (short %.2f). Try /refill when your balance is empty.", rej.Shortfall)
	default:
		return "Dig rejected."
	}
}

// FormatStats formats the economy counters for display.
func FormatStats(st model.EconomyState, digsToday, digsLeft int, sessionID string) string {
	var b strings.Builder
	b.WriteString("📊 <b>Economy Stats</b>\n\n")
	b.WriteString(fmt.Sprintf("credits: %.2f\n", st.Credits))
	b.WriteString(fmt.Sprintf("minted: %.2f | spent: %.2f | burned: %.2f\n",
		st.CreditsMinted, st.CreditsSpent, st.CreditsBurned))
	b.WriteString(fmt.Sprintf("assets withdrawn (lifetime): %.0f\n", st.CreditsTransferred))
	b.WriteString(fmt.Sprintf("lifetime digs: %d\n", st.DigCount))
	b.WriteString(fmt.Sprintf("digs today: %d (left: %d)\n", digsToday, digsLeft))
	b.WriteString(fmt.Sprintf("session: %s\n", sessionID))
	b.WriteString(fmt.Sprintf("updated: %s\n", st.UpdatedAt.Format("2006-01-02 15:04")))
	return b.String()
}

// FormatLedger formats the unwithdrawn reward balances, catalog order.
func FormatLedger(ledger map[string]float64, assets []model.Asset) string {
	var b strings.Builder
	b.WriteString("🎒 <b>Unwithdrawn Rewards</b>\n\n")
	empty := true
	for _, a := range assets {
		amount := ledger[a.ID]
		if amount <= 0 {
			continue
		}
		empty = false
		b.WriteString(fmt.Sprintf("%.4f %s — %s (%s)\n", amount, a.Symbol, a.Name, a.Chain))
	}
	if empty {
		b.WriteString("Nothing yet. Go dig!\n")
	}
	return b.String()
}

// FormatWithdraw formats the withdrawal receipt.
func FormatWithdraw(cleared int, address, txID string) string {
	if cleared == 0 {
		return "🎒 Ledger is already empty — nothing to withdraw."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📤 <b>Withdrawal complete</b>\n\n%d asset(s) sent to %s\n", cleared, address))
	b.WriteString(fmt.Sprintf("tx: <code>%s</code>\n", txID))
	b.WriteString("(demo only — nothing moved on chain)")
	return b.String()
}

// FormatHelp lists the available commands.
func FormatHelp() string {
	return strings.Join([]string{
		"Available commands:",
		"• /pools — list treasure pools",
		"• /dig <pool> — spend credits to dig",
		"• /balance — current credits",
		"• /ledger — unwithdrawn rewards",
		"• /withdraw — clear the ledger to your wallet",
		"• /refill — faucet, only when balance is 0",
		"• /connect <evm|solana> — connect the demo wallet",
		"• /stats — economy counters",
		"Admin: /pause <pool>, /restock <pool> <n>, /setcost <pool> <v>,",
		"/setends <pool> <label>, /mint <v>, /burn <v>, /reset",
	}, "\n")
}

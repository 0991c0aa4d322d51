package scheduler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"TreasureDig/internal/engine"
	"TreasureDig/internal/model"
	"TreasureDig/internal/notifier"
	"TreasureDig/internal/registry"
	"TreasureDig/internal/wallet"
)

// HandleCommand processes a user command and returns a reply. An empty
// reply means the handler already sent its own messages. Command
// handling is serialized by the polling loop, so the wallet connection
// field needs no lock.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return notifier.FormatHelp()
	}

	now := time.Now()
	switch fields[0] {
	case "/start":
		reply := "🏝 <b>Welcome to TreasureDig!</b>\n\nSpend credits to dig finite treasure pools and collect rewards.\n"
		if s.Engine.GrantIntro(model.IntroStart) {
			reply += "\n🎁 Starter bonus credited. Run /tutorial 1 to keep going.\n"
		}
		return reply + "\n" + notifier.FormatHelp()

	case "/tutorial":
		return s.handleTutorial(fields[1:])

	case "/pools":
		return notifier.FormatPools(s.Engine.ListPools(), s.Limiter.DigsLeft(now), s.Limiter.DailyCap())

	case "/dig":
		if len(fields) < 2 {
			return "Usage: /dig <pool>  (see /pools)"
		}
		return s.handleDig(fields[1])

	case "/balance":
		return fmt.Sprintf("💰 credits: %.2f", s.Engine.Credits())

	case "/ledger":
		return notifier.FormatLedger(s.Engine.Ledger(), registry.Assets())

	case "/withdraw":
		return s.handleWithdraw()

	case "/refill":
		if s.Engine.Refill() {
			return fmt.Sprintf("🚰 Faucet fired: credits now %.2f", s.Engine.Credits())
		}
		return "🚰 Faucet only works on an exactly empty balance."

	case "/connect":
		kind := model.ChainEVM
		if len(fields) > 1 && fields[1] == "solana" {
			kind = model.ChainSolana
		}
		c, err := wallet.ForKind(kind).Connect()
		if err != nil {
			return fmt.Sprintf("wallet connect failed: %v", err)
		}
		s.conn = &c
		return fmt.Sprintf("🔗 Connected %s wallet:\n<code>%s</code>", c.ChainKind, c.Address)

	case "/stats":
		return notifier.FormatStats(s.Engine.Snapshot(),
			s.Limiter.DigsToday(now), s.Limiter.DigsLeft(now), s.Limiter.SessionID())

	case "/pause":
		if len(fields) < 2 {
			return "Usage: /pause <pool>"
		}
		paused, ok := s.Registry.TogglePause(fields[1])
		if !ok {
			return fmt.Sprintf("unknown pool %q", fields[1])
		}
		if paused {
			return fmt.Sprintf("⏸ %s paused", fields[1])
		}
		return fmt.Sprintf("▶️ %s unpaused", fields[1])

	case "/restock":
		if len(fields) < 3 {
			return "Usage: /restock <pool> <count>"
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil || n <= 0 {
			return "count must be a positive integer"
		}
		if !s.Registry.BumpRemaining(fields[1], n) {
			return fmt.Sprintf("unknown pool %q", fields[1])
		}
		return fmt.Sprintf("📦 %s restocked by %d", fields[1], n)

	case "/setcost":
		if len(fields) < 3 {
			return "Usage: /setcost <pool> <cost>"
		}
		cost, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return "cost must be a number"
		}
		if !s.Registry.ApplyAdminEdit(fields[1], registry.AdminEdit{DigCost: &cost}) {
			return fmt.Sprintf("unknown pool %q", fields[1])
		}
		return fmt.Sprintf("💲 %s dig cost updated", fields[1])

	case "/setends":
		if len(fields) < 3 {
			return "Usage: /setends <pool> <label>"
		}
		label := strings.Join(fields[2:], " ")
		if !s.Registry.ApplyAdminEdit(fields[1], registry.AdminEdit{Ends: &label}) {
			return fmt.Sprintf("unknown pool %q", fields[1])
		}
		return fmt.Sprintf("⌛ %s ends label updated", fields[1])

	case "/mint":
		if len(fields) < 2 {
			return "Usage: /mint <amount>"
		}
		amount, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || !s.Engine.AdminMint(amount) {
			return "amount must be a positive number"
		}
		return fmt.Sprintf("✨ minted %.2f, credits now %.2f", amount, s.Engine.Credits())

	case "/burn":
		if len(fields) < 2 {
			return "Usage: /burn <amount>"
		}
		amount, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return "amount must be a positive number"
		}
		burned := s.Engine.AdminBurn(amount)
		return fmt.Sprintf("🔥 burned %.2f, credits now %.2f", burned, s.Engine.Credits())

	case "/reset":
		s.Engine.Reset()
		return "♻️ Full demo reset done. Pools reseeded, balance cleared."

	default:
		return notifier.FormatHelp()
	}
}

func (s *Scheduler) handleTutorial(args []string) string {
	if len(args) < 1 {
		return "Usage: /tutorial <1|2|3>"
	}
	var step model.IntroStep
	switch args[0] {
	case "1":
		step = model.IntroOne
	case "2":
		step = model.IntroTwo
	case "3":
		step = model.IntroThree
	default:
		return "Usage: /tutorial <1|2|3>"
	}

	granted := s.Engine.GrantIntro(step)
	if args[0] == "3" {
		s.Engine.MarkIntroComplete()
	}
	if !granted {
		return "You already collected this tutorial bonus."
	}
	return fmt.Sprintf("🎁 Tutorial bonus credited, balance %.2f", s.Engine.Credits())
}

func (s *Scheduler) handleDig(poolID string) string {
	attempt, err := s.Engine.Dig(poolID)
	if err != nil {
		var rej *engine.Rejection
		if errors.As(err, &rej) {
			return notifier.FormatRejection(rej)
		}
		if errors.Is(err, engine.ErrDigInProgress) {
			return "⛏ Easy! A dig is already resolving."
		}
		return err.Error()
	}

	s.trySend(fmt.Sprintf("⛏ Digging %s… %d seconds", poolID, attempt.Seconds))
	reward, ok := attempt.Wait()
	if !ok {
		return "Dig abandoned before settlement."
	}
	asset, _ := registry.AssetByID(reward.AssetID)
	return notifier.FormatReward(reward, asset)
}

func (s *Scheduler) handleWithdraw() string {
	if s.conn == nil {
		return "🔗 Connect a wallet first: /connect <evm|solana>"
	}

	ledger := s.Engine.Ledger()
	sendable := false
	for assetID, amount := range ledger {
		if amount <= 0 {
			continue
		}
		if asset, ok := registry.AssetByID(assetID); ok && wallet.CanSend(*s.conn, asset) {
			sendable = true
			break
		}
	}
	if !sendable {
		return "🔗 The connected wallet can't receive any of your assets. Try the other chain."
	}

	txID := wallet.NewTxID(s.conn.ChainKind)
	cleared := s.Engine.WithdrawAll(s.conn.Address, txID)
	return notifier.FormatWithdraw(cleared, s.conn.Address, txID)
}

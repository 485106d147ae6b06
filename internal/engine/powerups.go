package engine

import (
	"github.com/neonrift/neonrift/internal/profile"
	"github.com/neonrift/neonrift/internal/rng"
)

// PowerUpResult reports the outcome of a power-up activation attempt.
// Failed activations are rejections, not errors: nothing changed.
type PowerUpResult struct {
	Activated bool
	Reason    string // Why the activation was rejected, empty on success
	Notice    string // User-facing message on success
}

// ActivatePowerUp consumes one charge of the given power-up and applies
// its effect to the current run. Rejected when no run is active, the
// inventory is empty, or the per-run cooldown has not elapsed.
func (e *Engine) ActivatePowerUp(kind profile.PowerUpKind) PowerUpResult {
	if e.state != StateRunning || e.run == nil {
		return PowerUpResult{Reason: "no active run"}
	}

	slot, ok := e.profile.PowerUps[kind]
	if !ok || slot.Count <= 0 {
		return PowerUpResult{Reason: "none left"}
	}

	now := e.nowMs()
	if last, used := e.run.powerLastUsedMs[string(kind)]; used && last >= 0 {
		if now-last < int64(slot.CooldownSeconds)*1000 {
			return PowerUpResult{Reason: "cooling down"}
		}
	}

	slot.Count--
	slot.LastUsedMs = now
	e.run.powerLastUsedMs[string(kind)] = now
	e.run.PowerUses++

	var notice string
	switch kind {
	case profile.PowerTimeBoost:
		e.run.TimeLeft = rng.ClampF(
			e.run.TimeLeft+e.cfg.PowerUps.TimeBoostSeconds,
			0, float64(e.run.Mission.TimeLimitSeconds))
		notice = "Time Boost engaged"
	case profile.PowerDoubleXp:
		e.run.DoubleXpPower = true
		e.sched.after(e.run.Tick, e.secondsToTicks(e.cfg.PowerUps.DoubleXpSeconds), func() {
			if e.run != nil {
				e.run.DoubleXpPower = false
			}
		})
		notice = "Double XP activated"
	case profile.PowerSkip:
		e.run.SkipPending = true
		notice = "Skip armed"
	case profile.PowerFreeze:
		e.run.FreezeActive = true
		e.sched.after(e.run.Tick, e.secondsToTicks(e.cfg.PowerUps.FreezeSeconds), func() {
			if e.run != nil {
				e.run.FreezeActive = false
			}
		})
		notice = "Timer frozen"
	default:
		// Unknown kind: refund and reject.
		slot.Count++
		e.run.PowerUses--
		delete(e.run.powerLastUsedMs, string(kind))
		return PowerUpResult{Reason: "unknown power-up"}
	}

	e.saveProfile()
	return PowerUpResult{Activated: true, Notice: notice}
}

// PowerUpReady reports whether the given kind could be activated now,
// for HUD display.
func (e *Engine) PowerUpReady(kind profile.PowerUpKind) bool {
	slot, ok := e.profile.PowerUps[kind]
	if !ok || slot.Count <= 0 {
		return false
	}
	if e.state != StateRunning || e.run == nil {
		return false
	}
	if last, used := e.run.powerLastUsedMs[string(kind)]; used && last >= 0 {
		return e.nowMs()-last >= int64(slot.CooldownSeconds)*1000
	}
	return true
}

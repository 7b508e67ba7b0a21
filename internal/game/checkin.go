package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/logger"
	"github.com/xenopets/XenoPets_Go/internal/persist"
)

const (
	checkinKeyPrefix = "checkin_"

	// CheckinBaseReward is the xenocoin grant for a daily check-in.
	CheckinBaseReward = 50

	// CheckinWeeklyBonus is the extra grant every 7 consecutive days.
	CheckinWeeklyBonus = 100
)

// checkinRecord is the per-user streak state kept in the kv store, outside
// the snapshot.
type checkinRecord struct {
	LastCheckin time.Time `json:"lastCheckin"`
	Streak      int       `json:"streak"`
}

// DailyCheckin grants the daily reward once per UTC calendar day. Streaks
// continue across consecutive days and reset after a gap; every 7th day adds
// the weekly bonus.
func (s *service) DailyCheckin(ctx context.Context) (*CheckinResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return nil, err
	}
	if s.kv == nil {
		return nil, fmt.Errorf("%w: no check-in storage", domain.ErrInvalidInput)
	}

	key := checkinKeyPrefix + user.ID
	var record checkinRecord
	if data, err := s.kv.Get(ctx, key); err == nil {
		if err := json.Unmarshal(data, &record); err != nil {
			logger.FromContext(ctx).Warn("Corrupt check-in record, resetting", "user_id", user.ID, "error", err)
			record = checkinRecord{}
		}
	} else if !errors.Is(err, persist.ErrKeyNotFound) {
		return nil, fmt.Errorf("failed to read check-in record: %w", err)
	}

	now := s.clock.Now().UTC()
	today := now.Truncate(24 * time.Hour)
	last := record.LastCheckin.UTC().Truncate(24 * time.Hour)

	if !record.LastCheckin.IsZero() && last.Equal(today) {
		return nil, fmt.Errorf("%w: next at %s", domain.ErrAlreadyCheckedIn, today.Add(24*time.Hour).Format(time.RFC3339))
	}

	if !record.LastCheckin.IsZero() && last.Equal(today.Add(-24*time.Hour)) {
		record.Streak++
	} else {
		record.Streak = 1
	}
	record.LastCheckin = now

	reward := CheckinBaseReward
	weekly := record.Streak%7 == 0
	if weekly {
		reward += CheckinWeeklyBonus
	}

	if err := s.remote.UpdateCurrency(ctx, user.ID, domain.CurrencyXenocoins, reward, "checkin"); err != nil {
		return nil, err
	}
	s.state.SetBalance(domain.CurrencyXenocoins, s.state.Balance(domain.CurrencyXenocoins)+reward)

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode check-in record: %w", err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return nil, fmt.Errorf("failed to persist check-in record: %w", err)
	}

	message := fmt.Sprintf("Check-in diário! +%d Xenocoins (sequência de %d dias).", reward, record.Streak)
	if weekly {
		message = fmt.Sprintf("Bônus semanal! +%d Xenocoins (sequência de %d dias).", reward, record.Streak)
	}
	s.notifyLocked(domain.NotificationSuccess, "Check-in diário", message)

	logger.FromContext(ctx).Info("Daily check-in",
		"user_id", user.ID, "streak", record.Streak, "reward", reward, "weekly_bonus", weekly)
	s.publish(ctx, event.NewCheckinEvent(user.ID, record.Streak, reward))
	s.saveLocked(ctx)

	return &CheckinResult{Streak: record.Streak, Reward: reward, WeeklyBonus: weekly}, nil
}

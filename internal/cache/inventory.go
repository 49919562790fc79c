package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix     = "user:%d"
	SettingsKey       = "site:settings"
	CategoriesKey     = "guide:categories"
	LatestReplaysKey  = "replays:latest"
	ReplayKeyPrefix   = "replay:%d"
)

const (
	UserTTL          = 5 * time.Minute
	SettingsTTL      = time.Minute
	CategoriesTTL    = 10 * time.Minute
	LatestReplaysTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ReplayKey(replayID uint) string {
	return fmt.Sprintf(ReplayKeyPrefix, replayID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateSettings(ctx context.Context) {
	Invalidate(ctx, SettingsKey)
}

func InvalidateCategories(ctx context.Context) {
	Invalidate(ctx, CategoriesKey)
}

func InvalidateLatestReplays(ctx context.Context) {
	Invalidate(ctx, LatestReplaysKey)
}

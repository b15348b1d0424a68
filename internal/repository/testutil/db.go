package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"kitten/backend/internal/db"
	"kitten/backend/internal/model"
	"kitten/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce 确保 snowflake 在所有并行测试中只初始化一次
var snowflakeOnce sync.Once

// NewTestDB 创建内存 SQLite 数据库并执行所有迁移
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// 线程安全地只初始化一次 snowflake
	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// sync.Once 内无法使用 t.Fatalf，改用 panic
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// 使用共享缓存模式以支持内存数据库的并发访问
	// 每个测试使用唯一的数据库名称以避免冲突
	// 使用更可靠的唯一标识符
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// boolToInt 将布尔值转换为整数 (0/1)
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SeedIdea 插入测试反馈数据并返回其 ID
func SeedIdea(t *testing.T, db *sql.DB, idea model.FeedbackIdea) int64 {
	t.Helper()

	if idea.ID == 0 {
		idea.ID = snowflake.NextID()
	}
	if idea.Status == "" {
		idea.Status = model.FeedbackStatusIdea
	}
	if idea.CreatedBy == "" {
		idea.CreatedBy = "seed-user"
	}
	created := idea.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	createdStr := created.UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO feedback_ideas (id, title, detail, status, created_by, votes_count, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		idea.ID, idea.Title, idea.Detail, idea.Status, idea.CreatedBy, idea.VotesCount, createdStr, createdStr,
	)
	if err != nil {
		t.Fatalf("failed to seed idea: %v", err)
	}

	return idea.ID
}

// SeedVote 插入一条投票记录（不更新计数）
func SeedVote(t *testing.T, db *sql.DB, ideaID int64, uid string) {
	t.Helper()

	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO feedback_votes (idea_id, uid, created_at) VALUES (?, ?, ?)`,
		ideaID, uid, now,
	)
	if err != nil {
		t.Fatalf("failed to seed vote: %v", err)
	}
}

// SeedToggles 插入测试同步开关
func SeedToggles(t *testing.T, db *sql.DB, toggles model.SyncToggles) {
	t.Helper()

	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO sync_toggles (uid, favorites, history, quests, updated_at) VALUES (?, ?, ?, ?, ?)`,
		toggles.UID, boolToInt(toggles.Favorites), boolToInt(toggles.History), boolToInt(toggles.Quests), now,
	)
	if err != nil {
		t.Fatalf("failed to seed sync toggles: %v", err)
	}
}

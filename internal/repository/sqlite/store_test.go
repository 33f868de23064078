package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestUser(t *testing.T, db *DB, username string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func newTestChatbot(t *testing.T, db *DB, ownerID uuid.UUID) *domain.Chatbot {
	t.Helper()
	chatbot := &domain.Chatbot{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        "Bot1",
		Description: "desc",
		Industry:    "Technology",
		Personality: "friendly",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, NewChatbotRepository(db).Create(context.Background(), chatbot))
	return chatbot
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &domain.User{
		ID: uuid.New(), Username: "alice", Email: "a@x.com",
		PasswordHash: "h1", CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &domain.User{
		ID: uuid.New(), Username: "alice", Email: "b@x.com",
		PasswordHash: "h2", CreatedAt: time.Now(),
	}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)

	// Only the first registration is stored
	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{
		ID: uuid.New(), Username: "alice", Email: "a@x.com",
		PasswordHash: "h", CreatedAt: time.Now(),
	}))

	err := repo.Create(ctx, &domain.User{
		ID: uuid.New(), Username: "bob", Email: "a@x.com",
		PasswordHash: "h", CreatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)
}

func TestUserRepository_GetAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	got, err := repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestChatbotRepository_CreateListGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := newTestUser(t, db, "alice")
	repo := NewChatbotRepository(db)

	chatbot := newTestChatbot(t, db, user.ID)

	list, err := repo.ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bot1", list[0].Name)

	got, err := repo.Get(ctx, chatbot.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, chatbot.ID, got.ID)
	assert.Equal(t, user.ID, got.OwnerID)

	// Other users see nothing
	other, err := repo.ListByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestChatbotRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := newTestUser(t, db, "alice")
	chatbotRepo := NewChatbotRepository(db)
	convRepo := NewConversationRepository(db)

	chatbot := newTestChatbot(t, db, user.ID)
	for i := 0; i < 3; i++ {
		require.NoError(t, convRepo.Create(ctx, &domain.Conversation{
			ID: uuid.New(), ChatbotID: chatbot.ID,
			UserMessage: "hi", BotResponse: "hello!",
			Sentiment: domain.SentimentPositive, CreatedAt: time.Now(),
		}))
	}

	require.NoError(t, chatbotRepo.Delete(ctx, chatbot.ID))

	list, err := chatbotRepo.ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	turns, err := convRepo.ListByChatbot(ctx, chatbot.ID)
	require.NoError(t, err)
	assert.Empty(t, turns)

	stats, err := convRepo.Stats(ctx, chatbot.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalMessages)
}

func TestConversationRepository_ListOrderedByTimestamp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := newTestUser(t, db, "alice")
	chatbot := newTestChatbot(t, db, user.ID)
	repo := NewConversationRepository(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	// Insert out of chronological order
	for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		require.NoError(t, repo.Create(ctx, &domain.Conversation{
			ID: uuid.New(), ChatbotID: chatbot.ID,
			UserMessage: "m", BotResponse: "r",
			Sentiment: domain.SentimentNeutral, CreatedAt: base.Add(offset),
		}))
	}

	turns, err := repo.ListByChatbot(ctx, chatbot.ID)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	for i := 1; i < len(turns); i++ {
		assert.False(t, turns[i].CreatedAt.Before(turns[i-1].CreatedAt),
			"turns must be timestamp-ascending")
	}
}

func TestConversationRepository_Stats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := newTestUser(t, db, "alice")
	chatbot := newTestChatbot(t, db, user.ID)
	repo := NewConversationRepository(db)

	// Zero conversations: all zeros, not an error
	stats, err := repo.Stats(ctx, chatbot.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalMessages)
	assert.Equal(t, 0.0, stats.AvgUserMessageLength)
	assert.Equal(t, 0.0, stats.AvgBotResponseLength)

	require.NoError(t, repo.Create(ctx, &domain.Conversation{
		ID: uuid.New(), ChatbotID: chatbot.ID,
		UserMessage: "hi", BotResponse: "hello!",
		Sentiment: domain.SentimentPositive, CreatedAt: time.Now(),
	}))

	stats, err = repo.Stats(ctx, chatbot.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalMessages)
	assert.Equal(t, 2.0, stats.AvgUserMessageLength)
	assert.Equal(t, 6.0, stats.AvgBotResponseLength)

	require.NoError(t, repo.Create(ctx, &domain.Conversation{
		ID: uuid.New(), ChatbotID: chatbot.ID,
		UserMessage: "hiya", BotResponse: "hello there",
		Sentiment: domain.SentimentNeutral, CreatedAt: time.Now(),
	}))

	stats, err = repo.Stats(ctx, chatbot.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalMessages)
	assert.Equal(t, 3.0, stats.AvgUserMessageLength)  // (2+4)/2
	assert.Equal(t, 8.5, stats.AvgBotResponseLength)  // (6+11)/2
}

func TestConversationRepository_SentimentCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := newTestUser(t, db, "alice")
	chatbot := newTestChatbot(t, db, user.ID)
	repo := NewConversationRepository(db)

	labels := []domain.Sentiment{
		domain.SentimentPositive,
		domain.SentimentPositive,
		domain.SentimentNegative,
		"Unknown", // legacy label, excluded from the distribution
	}
	for _, label := range labels {
		require.NoError(t, repo.Create(ctx, &domain.Conversation{
			ID: uuid.New(), ChatbotID: chatbot.ID,
			UserMessage: "m", BotResponse: "r",
			Sentiment: label, CreatedAt: time.Now(),
		}))
	}

	counts, err := repo.SentimentCounts(ctx, chatbot.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"Positive": 2,
		"Negative": 1,
	}, counts)
}

func TestConversationRepository_DailyCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := newTestUser(t, db, "alice")
	chatbot := newTestChatbot(t, db, user.ID)
	repo := NewConversationRepository(db)

	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 21, 30, 0, 0, time.UTC)
	for _, ts := range []time.Time{day1, day1.Add(time.Hour), day2} {
		require.NoError(t, repo.Create(ctx, &domain.Conversation{
			ID: uuid.New(), ChatbotID: chatbot.ID,
			UserMessage: "m", BotResponse: "r",
			Sentiment: domain.SentimentNeutral, CreatedAt: ts,
		}))
	}

	counts, err := repo.DailyCounts(ctx, chatbot.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"2026-03-01": 2,
		"2026-03-02": 1,
	}, counts)

	total := 0
	for _, n := range counts {
		total += n
	}
	stats, err := repo.Stats(ctx, chatbot.ID)
	require.NoError(t, err)
	assert.Equal(t, stats.TotalMessages, total)
}

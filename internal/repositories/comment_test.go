package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupCommentPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(512) NOT NULL UNIQUE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS items (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		available BOOLEAN NOT NULL,
		owner_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		request_id BIGINT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS comments (
		id BIGSERIAL PRIMARY KEY,
		text TEXT NOT NULL,
		item_id BIGINT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestCommentRepositories(t *testing.T) {
	db, teardown := setupCommentPostgres(t)
	defer teardown()

	ctx := context.Background()

	users := NewUserWriteRepository(db, nil)
	items := NewItemWriteRepository(db, nil)
	readRepo := NewCommentReadRepository(db)
	writeRepo := NewCommentWriteRepository(db, nil)

	owner, err := users.Save(ctx, "owner", "owner@example.com")
	assert.NoError(t, err)
	renter, err := users.Save(ctx, "bob", "bob@example.com")
	assert.NoError(t, err)

	drill, err := items.Save(ctx, "drill", "cordless drill", true, owner.ID, nil)
	assert.NoError(t, err)

	first, err := writeRepo.Save(ctx, "worked great", drill.ID, renter.ID)
	assert.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, renter.ID, first.AuthorID)
	assert.Equal(t, "bob", first.AuthorName, "author name comes back on the write path too")

	time.Sleep(10 * time.Millisecond)
	second, err := writeRepo.Save(ctx, "battery wears out fast", drill.ID, renter.ID)
	assert.NoError(t, err)

	t.Run("GetByItemIDJoinsAuthorNewestFirst", func(t *testing.T) {
		comments, err := readRepo.GetByItemID(ctx, drill.ID)
		assert.NoError(t, err)
		assert.Len(t, comments, 2)
		assert.Equal(t, second.ID, comments[0].ID)
		assert.Equal(t, "bob", comments[0].AuthorName)
		assert.Equal(t, first.ID, comments[1].ID)
	})

	t.Run("NoCommentsYieldsEmpty", func(t *testing.T) {
		ladder, err := items.Save(ctx, "ladder", "3m ladder", true, owner.ID, nil)
		assert.NoError(t, err)

		comments, err := readRepo.GetByItemID(ctx, ladder.ID)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})
}

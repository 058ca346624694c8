package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Message is one chat message in a team's log. Append-only except for
// the pin toggle and hard delete.
type Message struct {
	ID        string    `json:"id"`
	TeamCode  string    `json:"teamCode"`
	Sender    PersonRef `json:"sender"`
	Content   string    `json:"content"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"timestamp"`
}

// MessageRepository defines chat message data operations
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	FindByID(ctx context.Context, id string) (*Message, error)
	FindByTeamCode(ctx context.Context, teamCode string) ([]*Message, error)
	TogglePin(ctx context.Context, id string) (*Message, error)
	Delete(ctx context.Context, id string) error
}

// ============================================
// PostgreSQL Message Repository Implementation
// ============================================

type pgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a new PostgreSQL message repository
func NewPgMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &pgMessageRepository{pool: pool}
}

const messageColumns = `id, team_code, sender_name, sender_email, sender_uid, content, is_pinned, created_at`

func scanMessage(row pgx.Row) (*Message, error) {
	message := &Message{}
	err := row.Scan(
		&message.ID, &message.TeamCode,
		&message.Sender.Name, &message.Sender.Email, &message.Sender.UID,
		&message.Content, &message.IsPinned, &message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return message, nil
}

func (r *pgMessageRepository) Create(ctx context.Context, message *Message) error {
	query := `
		INSERT INTO messages (team_code, sender_name, sender_email, sender_uid, content, is_pinned)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id, is_pinned, created_at
	`
	return r.pool.QueryRow(ctx, query,
		message.TeamCode, message.Sender.Name, message.Sender.Email,
		message.Sender.UID, message.Content,
	).Scan(&message.ID, &message.IsPinned, &message.CreatedAt)
}

func (r *pgMessageRepository) FindByID(ctx context.Context, id string) (*Message, error) {
	message, err := scanMessage(r.pool.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return message, err
}

func (r *pgMessageRepository) FindByTeamCode(ctx context.Context, teamCode string) ([]*Message, error) {
	// Oldest first for chat display
	query := `SELECT ` + messageColumns + ` FROM messages WHERE LOWER(team_code) = LOWER($1) ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, teamCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []*Message{}
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (r *pgMessageRepository) TogglePin(ctx context.Context, id string) (*Message, error) {
	query := `UPDATE messages SET is_pinned = NOT is_pinned WHERE id = $1 RETURNING ` + messageColumns
	message, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return message, err
}

func (r *pgMessageRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM messages WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

const messageSelect = `SELECT c.id, c.sender_id, c.message_type, c.priority, c.subject, c.message,
		c.attachment_path, c.is_broadcast, c.created_at,
		u.first_name || ' ' || u.last_name,
		(SELECT COUNT(*) FROM communication_recipients cr WHERE cr.communication_id = c.id),
		(SELECT COUNT(*) FROM communication_reads cd WHERE cd.communication_id = c.id)
		FROM communications c
		JOIN users u ON c.sender_id = u.id`

func scanMessage(row interface{ Scan(...interface{}) error }) (*models.Communication, error) {
	m := &models.Communication{}
	err := row.Scan(&m.ID, &m.SenderID, &m.MessageType, &m.Priority, &m.Subject, &m.Message,
		&m.AttachmentPath, &m.IsBroadcast, &m.CreatedAt,
		&m.SenderName, &m.RecipientCount, &m.ReadCount)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreateCommunication inserts the message and its recipient set in one
// transaction. An empty recipient list with is_broadcast resolves to
// every active user except the sender.
func CreateCommunication(db *sql.DB, m *models.Communication, recipientIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO communications (sender_id, message_type, priority, subject, message, attachment_path, is_broadcast)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err = tx.QueryRow(query, m.SenderID, m.MessageType, m.Priority, m.Subject, m.Message,
		m.AttachmentPath, m.IsBroadcast).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return err
	}

	if m.IsBroadcast && len(recipientIDs) == 0 {
		_, err = tx.Exec(`INSERT INTO communication_recipients (communication_id, user_id)
						  SELECT $1, id FROM users WHERE is_active = true AND id <> $2`,
			m.ID, m.SenderID)
		if err != nil {
			return err
		}
	} else {
		for _, userID := range recipientIDs {
			_, err = tx.Exec(`INSERT INTO communication_recipients (communication_id, user_id)
							  VALUES ($1, $2) ON CONFLICT DO NOTHING`, m.ID, userID)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

func GetCommunicationByID(db *sql.DB, id string) (*models.Communication, error) {
	return scanMessage(db.QueryRow(messageSelect+` WHERE c.id = $1`, id))
}

// GetInbox lists messages addressed to a user, newest first, with the
// per-user read flag.
func GetInbox(db *sql.DB, userID string, limit int) ([]*models.Communication, error) {
	query := `SELECT c.id, c.sender_id, c.message_type, c.priority, c.subject, c.message,
			  c.attachment_path, c.is_broadcast, c.created_at,
			  u.first_name || ' ' || u.last_name,
			  (SELECT COUNT(*) FROM communication_recipients cr WHERE cr.communication_id = c.id),
			  (SELECT COUNT(*) FROM communication_reads cd WHERE cd.communication_id = c.id),
			  EXISTS(SELECT 1 FROM communication_reads cd WHERE cd.communication_id = c.id AND cd.user_id = $1)
			  FROM communications c
			  JOIN users u ON c.sender_id = u.id
			  JOIN communication_recipients r ON r.communication_id = c.id AND r.user_id = $1
			  ORDER BY c.created_at DESC`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Communication
	for rows.Next() {
		m := &models.Communication{}
		err := rows.Scan(&m.ID, &m.SenderID, &m.MessageType, &m.Priority, &m.Subject, &m.Message,
			&m.AttachmentPath, &m.IsBroadcast, &m.CreatedAt,
			&m.SenderName, &m.RecipientCount, &m.ReadCount, &m.IsRead)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if messages == nil {
		messages = []*models.Communication{}
	}
	return messages, rows.Err()
}

// GetSentMessages lists messages a user authored, newest first.
func GetSentMessages(db *sql.DB, userID string, limit int) ([]*models.Communication, error) {
	query := messageSelect + ` WHERE c.sender_id = $1 ORDER BY c.created_at DESC`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Communication
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if messages == nil {
		messages = []*models.Communication{}
	}
	return messages, rows.Err()
}

// IsRecipient reports whether the message was addressed to the user.
func IsRecipient(db *sql.DB, communicationID, userID string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM communication_recipients
						WHERE communication_id = $1 AND user_id = $2)`,
		communicationID, userID).Scan(&exists)
	return exists, err
}

// MarkMessageRead records a read receipt. Repeat reads keep the first
// timestamp.
func MarkMessageRead(db *sql.DB, communicationID, userID string) error {
	_, err := db.Exec(`INSERT INTO communication_reads (communication_id, user_id)
					   VALUES ($1, $2) ON CONFLICT DO NOTHING`, communicationID, userID)
	return err
}

// CountUnreadMessages counts inbox messages the user has not read.
func CountUnreadMessages(db *sql.DB, userID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM communication_recipients r
						WHERE r.user_id = $1
						AND NOT EXISTS (SELECT 1 FROM communication_reads cd
										WHERE cd.communication_id = r.communication_id AND cd.user_id = $1)`,
		userID).Scan(&count)
	return count, err
}

package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

func CreateContactMessage(db *sql.DB, m *models.ContactMessage) error {
	return db.QueryRow(`INSERT INTO contact_messages (name, email, phone, subject, message)
						VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		m.Name, m.Email, m.Phone, m.Subject, m.Message).Scan(&m.ID, &m.CreatedAt)
}

func GetContactMessages(db *sql.DB) ([]*models.ContactMessage, error) {
	rows, err := db.Query(`SELECT id, name, email, phone, subject, message, is_read, created_at
						   FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.ContactMessage
	for rows.Next() {
		m := &models.ContactMessage{}
		err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if messages == nil {
		messages = []*models.ContactMessage{}
	}
	return messages, rows.Err()
}

func MarkContactMessageRead(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE contact_messages SET is_read = true WHERE id = $1`, id)
	return err
}

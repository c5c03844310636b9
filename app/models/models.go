package models

// TablePrefix namespaces every table so the app can share a database
// instance with other tenants.
const TablePrefix = "chatnest_"

// AllModels lists every model in migration-safe order (referenced
// tables first). Used by database.AutoMigrateAll and the test helpers.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Account{},
		&Session{},
		&VerificationToken{},
		&Profile{},
		&Server{},
		&Member{},
		&Channel{},
		&Message{},
		&Conversation{},
		&DirectMessage{},
	}
}

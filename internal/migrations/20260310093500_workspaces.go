package migrations

import (
	"github.com/jmoiron/sqlx"
)

func init() {
	m.addMigration(&migration{
		version: "20260310093500",
		up:      mig_20260310093500_workspaces_up,
		down:    mig_20260310093500_workspaces_down,
	})
}

func mig_20260310093500_workspaces_up(tx *sqlx.Tx) error {
	// id is the identity provider's organization id
	_, err := tx.Exec(`
        CREATE TABLE IF NOT EXISTS workspaces (
            id TEXT PRIMARY KEY,
            name VARCHAR(255) NOT NULL,
            slug VARCHAR(255) NOT NULL DEFAULT '',
            owner_id TEXT NOT NULL,
            image_url TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
            updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
        );
    `)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
        CREATE TABLE IF NOT EXISTS workspace_members (
            user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            workspace_id TEXT NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
            role VARCHAR(50) NOT NULL CHECK (role IN ('ADMIN', 'MEMBER')),
            created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
            UNIQUE (user_id, workspace_id)
        );
    `)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
        CREATE INDEX IF NOT EXISTS idx_workspace_members_workspace_id ON workspace_members(workspace_id);
    `)
	return err
}

func mig_20260310093500_workspaces_down(tx *sqlx.Tx) error {
	if _, err := tx.Exec(`DROP TABLE IF EXISTS workspace_members;`); err != nil {
		return err
	}
	_, err := tx.Exec(`DROP TABLE IF EXISTS workspaces;`)
	return err
}

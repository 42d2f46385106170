// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Drivers

Open selects the driver from the configured database type:

  - "postgres": github.com/lib/pq (production)
  - "sqlite": modernc.org/sqlite (development and tests, pure Go)

# Schema

Two tables back the record store:

  - voting_items: id, title, description, image_url, is_published, created_at
  - votes: id, item_id, voter_name, voter_email, voter_phone, is_verified, created_at

created_at columns hold epoch milliseconds so ordering and timestamps are
engine-independent. The DDL is restricted to the dialect both engines share
(IF NOT EXISTS, TEXT/BIGINT/BOOLEAN).

CreateSchema is idempotent and runs at startup:

	if err := db.CreateSchema(conn); err != nil {
		...
	}
*/
package db

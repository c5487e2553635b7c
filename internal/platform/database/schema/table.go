// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package schema provides centralized, immutable table descriptors for the
Postgres mirror.

Architecture:

  - Table: name, ordered column list, and primary key columns, declared once
    as a package-level value per table — nothing here touches SQL strings
    directly; callers (bulkload, swap, changes, reconcile) compose queries
    from these descriptors.
  - Staging/Old: every live table has a staging_* sibling built by a full
    sweep and, after a swap, a *_old sibling kept for one generation. These
    are derived from the live descriptor rather than hand-duplicated, since
    the column set is identical — only the table name changes.

This mirrors the teacher's declarative one-struct-per-table approach
(core_comic.go) scaled to a schema an order of magnitude larger: instead of
one bespoke struct per table, every table shares the [Table] shape and gets
its own package-level instance.
*/
package schema

import (
	"fmt"

	"github.com/jessielw/tmdb-service/internal/platform/constants"
)

// Table describes one Postgres table: its name, the ordered set of columns
// the loader writes, and the columns forming its primary (or natural) key.
type Table struct {
	Name    string
	Columns []string
	PK      []string
}

// Staging returns the staging_* descriptor for a live table.
func Staging(t Table) Table {
	return Table{Name: "staging_" + t.Name, Columns: t.Columns, PK: t.PK}
}

// Old returns the *_old descriptor a swap leaves behind for rollback.
func Old(t Table) Table {
	return Table{Name: t.Name + "_old", Columns: t.Columns, PK: t.PK}
}

// QualifiedName returns the table name qualified by the public schema,
// e.g. "public.movie".
func (t Table) QualifiedName() string {
	return fmt.Sprintf("%s.%s", constants.SchemaPublic, t.Name)
}

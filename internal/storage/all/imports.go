// Package all wires every built-in storage backend into the storage
// factory. Import it for side effects from a main package:
//
//	import _ "ghanarepro/internal/storage/all"
//
// after which storage.New and storage.Mirror accept the kinds "sqlite",
// "postgres", "mssql" and "mysql".
package all

import (
	_ "ghanarepro/internal/storage/mssql"
	_ "ghanarepro/internal/storage/mysql"
	_ "ghanarepro/internal/storage/postgres"
	_ "ghanarepro/internal/storage/sqlite"
)

package appointment

import "github.com/bookcore/appointment-service/pkg/dbmetrics"

// Database access goes through the dbmetrics executor interfaces so
// the same repository works inside and outside a transaction.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

package booking

import (
	"github.com/bimbelceria/BC-AdminService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works over
// *sql.DB, the metrics wrapper and open transactions alike
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

package material

import (
	"github.com/bimbelceria/BC-AdminService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor

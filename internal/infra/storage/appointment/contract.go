package appointment

import "github.com/avelkin/SPM-BookingService/pkg/txmanager"

// DBExecutor интерфейс исполнителя запросов, переиспользуем из txmanager.
// Репозиторий работает одинаково поверх *sql.DB и активной транзакции из контекста.
type DBExecutor = txmanager.DBExecutor

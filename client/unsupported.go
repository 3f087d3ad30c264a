package client

import "time"

// ConnectionCapabilities is the part of the connection contract this client
// does not offer. UnsupportedConnection implements all of it by failing.
type ConnectionCapabilities interface {
	Commit() error
	Rollback() error
	SetAutoCommit(autoCommit bool) error
	AutoCommit() (bool, error)
	SetSavepoint(name string) (string, error)
	RollbackTo(savepoint string) error
	ReleaseSavepoint(savepoint string) error
	TransactionIsolation() (int, error)
	SetTransactionIsolation(level int) error
	PrepareStatement(sql string) (*Statement, error)
	PrepareCall(sql string) (*Statement, error)
	CreateStatementWith(resultSetType, concurrency, holdability int) (*Statement, error)
	NativeSQL(sql string) (string, error)
	MetaData() (interface{}, error)
	TypeMap() (map[string]interface{}, error)
	SetTypeMap(typeMap map[string]interface{}) error
	ClientInfo(name string) (string, error)
	SetClientInfo(name, value string) error
	Holdability() (int, error)
	SetHoldability(holdability int) error
	Catalog() (string, error)
	SetCatalog(catalog string) error
	Schema() (string, error)
	SetSchema(schema string) error
	IsReadOnly() (bool, error)
	SetReadOnly(readOnly bool) error
	NetworkTimeout() (time.Duration, error)
	SetNetworkTimeout(timeout time.Duration) error
	IsValid(timeout time.Duration) (bool, error)
	Abort() error
	Warnings() ([]string, error)
	ClearWarnings() error
}

// UnsupportedConnection fails every ConnectionCapabilities method with ErrUnsupported.
type UnsupportedConnection struct{}

func (UnsupportedConnection) Commit() error                       { return unsupported("commit") }
func (UnsupportedConnection) Rollback() error                     { return unsupported("rollback") }
func (UnsupportedConnection) SetAutoCommit(bool) error            { return unsupported("set auto commit") }
func (UnsupportedConnection) AutoCommit() (bool, error)           { return false, unsupported("auto commit") }
func (UnsupportedConnection) SetSavepoint(string) (string, error) { return "", unsupported("set savepoint") }
func (UnsupportedConnection) RollbackTo(string) error             { return unsupported("rollback to savepoint") }
func (UnsupportedConnection) ReleaseSavepoint(string) error       { return unsupported("release savepoint") }

func (UnsupportedConnection) TransactionIsolation() (int, error) {
	return 0, unsupported("transaction isolation")
}

func (UnsupportedConnection) SetTransactionIsolation(int) error {
	return unsupported("set transaction isolation")
}

func (UnsupportedConnection) PrepareStatement(string) (*Statement, error) {
	return nil, unsupported("prepare statement")
}

func (UnsupportedConnection) PrepareCall(string) (*Statement, error) {
	return nil, unsupported("prepare call")
}

func (UnsupportedConnection) CreateStatementWith(int, int, int) (*Statement, error) {
	return nil, unsupported("create statement with options")
}

func (UnsupportedConnection) NativeSQL(string) (string, error) { return "", unsupported("native sql") }
func (UnsupportedConnection) MetaData() (interface{}, error)   { return nil, unsupported("metadata") }

func (UnsupportedConnection) TypeMap() (map[string]interface{}, error) {
	return nil, unsupported("type map")
}

func (UnsupportedConnection) SetTypeMap(map[string]interface{}) error {
	return unsupported("set type map")
}

func (UnsupportedConnection) ClientInfo(string) (string, error)  { return "", unsupported("client info") }
func (UnsupportedConnection) SetClientInfo(string, string) error { return unsupported("set client info") }
func (UnsupportedConnection) Holdability() (int, error)          { return 0, unsupported("holdability") }
func (UnsupportedConnection) SetHoldability(int) error           { return unsupported("set holdability") }
func (UnsupportedConnection) Catalog() (string, error)           { return "", unsupported("catalog") }
func (UnsupportedConnection) SetCatalog(string) error            { return unsupported("set catalog") }
func (UnsupportedConnection) Schema() (string, error)            { return "", unsupported("schema") }
func (UnsupportedConnection) SetSchema(string) error             { return unsupported("set schema") }
func (UnsupportedConnection) IsReadOnly() (bool, error)          { return false, unsupported("read only") }
func (UnsupportedConnection) SetReadOnly(bool) error             { return unsupported("set read only") }

func (UnsupportedConnection) NetworkTimeout() (time.Duration, error) {
	return 0, unsupported("network timeout")
}

func (UnsupportedConnection) SetNetworkTimeout(time.Duration) error {
	return unsupported("set network timeout")
}

func (UnsupportedConnection) IsValid(time.Duration) (bool, error) { return false, unsupported("is valid") }
func (UnsupportedConnection) Abort() error                        { return unsupported("abort") }
func (UnsupportedConnection) Warnings() ([]string, error)         { return nil, unsupported("warnings") }
func (UnsupportedConnection) ClearWarnings() error                { return unsupported("clear warnings") }

// StatementCapabilities is the part of the statement contract this client
// does not offer. UnsupportedStatement implements all of it by failing.
type StatementCapabilities interface {
	Cancel() error
	Warnings() ([]string, error)
	ClearWarnings() error
	CloseOnCompletion() error
	IsCloseOnCompletion() (bool, error)
	IsClosed() (bool, error)
	ExecuteWithKeys(sql string, columns ...string) (bool, error)
	ExecuteUpdateWithKeys(sql string, columns ...string) (int64, error)
	GeneratedKeys() (*ResultSet, error)
	MoreResults() (bool, error)
	FetchDirection() (int, error)
	SetFetchDirection(direction int) error
	FetchSize() (int, error)
	SetFetchSize(rows int) error
	MaxFieldSize() (int, error)
	SetMaxFieldSize(max int) error
	MaxRows() (int, error)
	SetMaxRows(max int) error
	QueryTimeout() (time.Duration, error)
	SetQueryTimeout(timeout time.Duration) error
	ResultSetConcurrency() (int, error)
	ResultSetHoldability() (int, error)
	ResultSetType() (int, error)
	IsPoolable() (bool, error)
	SetPoolable(poolable bool) error
	SetCursorName(name string) error
	SetEscapeProcessing(enable bool) error
}

// UnsupportedStatement fails every StatementCapabilities method with ErrUnsupported.
type UnsupportedStatement struct{}

func (UnsupportedStatement) Cancel() error                { return unsupported("cancel") }
func (UnsupportedStatement) Warnings() ([]string, error)  { return nil, unsupported("warnings") }
func (UnsupportedStatement) ClearWarnings() error         { return unsupported("clear warnings") }
func (UnsupportedStatement) CloseOnCompletion() error     { return unsupported("close on completion") }
func (UnsupportedStatement) IsClosed() (bool, error)      { return false, unsupported("is closed") }
func (UnsupportedStatement) MoreResults() (bool, error)   { return false, unsupported("more results") }
func (UnsupportedStatement) FetchDirection() (int, error) { return 0, unsupported("fetch direction") }
func (UnsupportedStatement) SetFetchDirection(int) error  { return unsupported("set fetch direction") }
func (UnsupportedStatement) FetchSize() (int, error)      { return 0, unsupported("fetch size") }
func (UnsupportedStatement) SetFetchSize(int) error       { return unsupported("set fetch size") }
func (UnsupportedStatement) MaxFieldSize() (int, error)   { return 0, unsupported("max field size") }
func (UnsupportedStatement) SetMaxFieldSize(int) error    { return unsupported("set max field size") }
func (UnsupportedStatement) MaxRows() (int, error)        { return 0, unsupported("max rows") }
func (UnsupportedStatement) SetMaxRows(int) error         { return unsupported("set max rows") }
func (UnsupportedStatement) IsPoolable() (bool, error)    { return false, unsupported("poolable") }
func (UnsupportedStatement) SetPoolable(bool) error       { return unsupported("set poolable") }
func (UnsupportedStatement) SetCursorName(string) error   { return unsupported("set cursor name") }

func (UnsupportedStatement) SetEscapeProcessing(bool) error {
	return unsupported("set escape processing")
}

func (UnsupportedStatement) IsCloseOnCompletion() (bool, error) {
	return false, unsupported("close on completion")
}

func (UnsupportedStatement) ExecuteWithKeys(string, ...string) (bool, error) {
	return false, unsupported("execute with generated keys")
}

func (UnsupportedStatement) ExecuteUpdateWithKeys(string, ...string) (int64, error) {
	return 0, unsupported("execute update with generated keys")
}

func (UnsupportedStatement) GeneratedKeys() (*ResultSet, error) {
	return nil, unsupported("generated keys")
}

func (UnsupportedStatement) QueryTimeout() (time.Duration, error) {
	return 0, unsupported("query timeout")
}

func (UnsupportedStatement) SetQueryTimeout(time.Duration) error {
	return unsupported("set query timeout")
}

func (UnsupportedStatement) ResultSetConcurrency() (int, error) {
	return 0, unsupported("result set concurrency")
}

func (UnsupportedStatement) ResultSetHoldability() (int, error) {
	return 0, unsupported("result set holdability")
}

func (UnsupportedStatement) ResultSetType() (int, error) {
	return 0, unsupported("result set type")
}

var (
	_ ConnectionCapabilities = UnsupportedConnection{}
	_ StatementCapabilities  = UnsupportedStatement{}
)

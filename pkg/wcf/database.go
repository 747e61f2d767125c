package wcf

import "github.com/hsiuhsiu/wcferry-go/pkg/wcf/wcfpb"

// DBNames lists the databases the SDK can query.
func (c *Client) DBNames() ([]string, error) {
	resp, err := c.Call(wcfpb.FuncGetDBNames, nil)
	if err != nil {
		return nil, err
	}
	return resp.DBNames(), nil
}

// DBTables lists the tables of db with their CREATE statements.
func (c *Client) DBTables(db string) ([]*wcfpb.DbTable, error) {
	resp, err := c.Call(wcfpb.FuncGetDBTables, wcfpb.Str(db))
	if err != nil {
		return nil, err
	}
	return resp.DBTables(), nil
}

// ExecDBQuery runs sql against db inside the WeChat process. Any reply other
// than a row set yields no rows.
func (c *Client) ExecDBQuery(db, sql string) ([]*wcfpb.DbRow, error) {
	resp, err := c.Call(wcfpb.FuncExecDBQuery, &wcfpb.DbQuery{DB: db, SQL: sql})
	if err != nil {
		return nil, err
	}
	return resp.DBRows(), nil
}

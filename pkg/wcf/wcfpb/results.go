package wcfpb

// Response payload messages.

// WxMsg is one inbound chat message delivered on the message channel.
type WxMsg struct {
	IsSelf  bool
	IsGroup bool
	ID      uint64
	Type    uint32
	Ts      uint32
	RoomID  string
	Content string
	Sender  string
	Sign    string
	Thumb   string
	Extra   string
	XML     string
}

func (m *WxMsg) appendTo(b []byte) []byte {
	b = appendBool(b, 1, m.IsSelf)
	b = appendBool(b, 2, m.IsGroup)
	b = appendUint64(b, 3, m.ID)
	b = appendUint64(b, 4, uint64(m.Type))
	b = appendUint64(b, 5, uint64(m.Ts))
	b = appendString(b, 6, m.RoomID)
	b = appendString(b, 7, m.Content)
	b = appendString(b, 8, m.Sender)
	b = appendString(b, 9, m.Sign)
	b = appendString(b, 10, m.Thumb)
	b = appendString(b, 11, m.Extra)
	return appendString(b, 12, m.XML)
}

func (m *WxMsg) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.IsSelf = f.bool()
		case 2:
			m.IsGroup = f.bool()
		case 3:
			m.ID = f.uint64()
		case 4:
			m.Type = f.uint32()
		case 5:
			m.Ts = f.uint32()
		case 6:
			m.RoomID = f.str()
		case 7:
			m.Content = f.str()
		case 8:
			m.Sender = f.str()
		case 9:
			m.Sign = f.str()
		case 10:
			m.Thumb = f.str()
		case 11:
			m.Extra = f.str()
		case 12:
			m.XML = f.str()
		}
		return nil
	})
}

// MsgTypes maps message type codes to their descriptions.
type MsgTypes struct {
	Types map[int32]string
}

func (m *MsgTypes) appendTo(b []byte) []byte {
	for k, v := range m.Types {
		entry := appendVarintAlways(nil, 1, uint64(int64(k)))
		entry = appendStringAlways(entry, 2, v)
		b = appendBytesAlways(b, 1, entry)
	}
	return b
}

func (m *MsgTypes) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		if f.num != 1 || !f.isMessage() {
			return nil
		}
		var (
			key int32
			val string
		)
		err := walk(f.b, func(e field) error {
			switch e.num {
			case 1:
				key = e.int32()
			case 2:
				val = e.str()
			}
			return nil
		})
		if err != nil {
			return err
		}
		if m.Types == nil {
			m.Types = make(map[int32]string)
		}
		m.Types[key] = val
		return nil
	})
}

type RpcContact struct {
	Wxid     string
	Code     string
	Remark   string
	Name     string
	Country  string
	Province string
	City     string
	Gender   int32
}

func (m *RpcContact) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Wxid)
	b = appendString(b, 2, m.Code)
	b = appendString(b, 3, m.Remark)
	b = appendString(b, 4, m.Name)
	b = appendString(b, 5, m.Country)
	b = appendString(b, 6, m.Province)
	b = appendString(b, 7, m.City)
	return appendInt32(b, 8, m.Gender)
}

func (m *RpcContact) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.Wxid = f.str()
		case 2:
			m.Code = f.str()
		case 3:
			m.Remark = f.str()
		case 4:
			m.Name = f.str()
		case 5:
			m.Country = f.str()
		case 6:
			m.Province = f.str()
		case 7:
			m.City = f.str()
		case 8:
			m.Gender = f.int32()
		}
		return nil
	})
}

type RpcContacts struct {
	Contacts []*RpcContact
}

func (m *RpcContacts) appendTo(b []byte) []byte {
	for _, c := range m.Contacts {
		b = appendMessage(b, 1, c)
	}
	return b
}

func (m *RpcContacts) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		if f.num != 1 || !f.isMessage() {
			return nil
		}
		c := new(RpcContact)
		if err := c.unmarshal(f.b); err != nil {
			return err
		}
		m.Contacts = append(m.Contacts, c)
		return nil
	})
}

type DbNames struct {
	Names []string
}

func (m *DbNames) appendTo(b []byte) []byte {
	for _, n := range m.Names {
		b = appendStringAlways(b, 1, n)
	}
	return b
}

func (m *DbNames) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		if f.num == 1 && f.isMessage() {
			m.Names = append(m.Names, f.str())
		}
		return nil
	})
}

type DbTable struct {
	Name string
	SQL  string
}

func (m *DbTable) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	return appendString(b, 2, m.SQL)
}

func (m *DbTable) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.Name = f.str()
		case 2:
			m.SQL = f.str()
		}
		return nil
	})
}

type DbTables struct {
	Tables []*DbTable
}

func (m *DbTables) appendTo(b []byte) []byte {
	for _, t := range m.Tables {
		b = appendMessage(b, 1, t)
	}
	return b
}

func (m *DbTables) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		if f.num != 1 || !f.isMessage() {
			return nil
		}
		t := new(DbTable)
		if err := t.unmarshal(f.b); err != nil {
			return err
		}
		m.Tables = append(m.Tables, t)
		return nil
	})
}

// DbField is one column of a query result row.
type DbField struct {
	Type    int32
	Column  string
	Content []byte
}

func (m *DbField) appendTo(b []byte) []byte {
	b = appendInt32(b, 1, m.Type)
	b = appendString(b, 2, m.Column)
	return appendBytes(b, 3, m.Content)
}

func (m *DbField) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.Type = f.int32()
		case 2:
			m.Column = f.str()
		case 3:
			m.Content = f.bytes()
		}
		return nil
	})
}

type DbRow struct {
	Fields []*DbField
}

func (m *DbRow) appendTo(b []byte) []byte {
	for _, f := range m.Fields {
		b = appendMessage(b, 1, f)
	}
	return b
}

func (m *DbRow) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		if f.num != 1 || !f.isMessage() {
			return nil
		}
		df := new(DbField)
		if err := df.unmarshal(f.b); err != nil {
			return err
		}
		m.Fields = append(m.Fields, df)
		return nil
	})
}

type DbRows struct {
	Rows []*DbRow
}

func (m *DbRows) appendTo(b []byte) []byte {
	for _, r := range m.Rows {
		b = appendMessage(b, 1, r)
	}
	return b
}

func (m *DbRows) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		if f.num != 1 || !f.isMessage() {
			return nil
		}
		r := new(DbRow)
		if err := r.unmarshal(f.b); err != nil {
			return err
		}
		m.Rows = append(m.Rows, r)
		return nil
	})
}

// UserInfo describes the logged-in account.
type UserInfo struct {
	Wxid   string
	Name   string
	Mobile string
	Home   string
}

func (m *UserInfo) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Wxid)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Mobile)
	return appendString(b, 4, m.Home)
}

func (m *UserInfo) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.Wxid = f.str()
		case 2:
			m.Name = f.str()
		case 3:
			m.Mobile = f.str()
		case 4:
			m.Home = f.str()
		}
		return nil
	})
}

type OcrMsg struct {
	Status int32
	Result string
}

func (m *OcrMsg) appendTo(b []byte) []byte {
	b = appendInt32(b, 1, m.Status)
	return appendString(b, 2, m.Result)
}

func (m *OcrMsg) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.Status = f.int32()
		case 2:
			m.Result = f.str()
		}
		return nil
	})
}

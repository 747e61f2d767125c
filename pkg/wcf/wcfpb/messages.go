package wcfpb

// Request payload messages.

// TextMsg sends text. Aters lists the wxids to @ in a room, comma separated;
// "notify@all" mentions everyone.
type TextMsg struct {
	Msg      string
	Receiver string
	Aters    string
}

func (m *TextMsg) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Msg)
	b = appendString(b, 2, m.Receiver)
	return appendString(b, 3, m.Aters)
}

func (m *TextMsg) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.Msg = f.str()
		case 2:
			m.Receiver = f.str()
		case 3:
			m.Aters = f.str()
		}
		return nil
	})
}

// PathMsg sends a local file (image, file or emotion) to a receiver.
type PathMsg struct {
	Path     string
	Receiver string
}

func (m *PathMsg) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Path)
	return appendString(b, 2, m.Receiver)
}

func (m *PathMsg) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.Path = f.str()
		case 2:
			m.Receiver = f.str()
		}
		return nil
	})
}

type XmlMsg struct {
	Receiver string
	Content  string
	Path     string
	Type     int32
}

func (m *XmlMsg) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Receiver)
	b = appendString(b, 2, m.Content)
	b = appendString(b, 3, m.Path)
	return appendInt32(b, 4, m.Type)
}

func (m *XmlMsg) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.Receiver = f.str()
		case 2:
			m.Content = f.str()
		case 3:
			m.Path = f.str()
		case 4:
			m.Type = f.int32()
		}
		return nil
	})
}

// DbQuery runs SQL against one of the client's databases.
type DbQuery struct {
	DB  string
	SQL string
}

func (m *DbQuery) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.DB)
	return appendString(b, 2, m.SQL)
}

func (m *DbQuery) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.DB = f.str()
		case 2:
			m.SQL = f.str()
		}
		return nil
	})
}

// Verification accepts a friend request.
type Verification struct {
	V3    string
	V4    string
	Scene int32
}

func (m *Verification) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.V3)
	b = appendString(b, 2, m.V4)
	return appendInt32(b, 3, m.Scene)
}

func (m *Verification) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.V3 = f.str()
		case 2:
			m.V4 = f.str()
		case 3:
			m.Scene = f.int32()
		}
		return nil
	})
}

// MemberMgmt adds, invites or removes room members. Wxids is comma separated.
type MemberMgmt struct {
	RoomID string
	Wxids  string
}

func (m *MemberMgmt) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.RoomID)
	return appendString(b, 2, m.Wxids)
}

func (m *MemberMgmt) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.RoomID = f.str()
		case 2:
			m.Wxids = f.str()
		}
		return nil
	})
}

type DecPath struct {
	Src string
	Dst string
}

func (m *DecPath) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Src)
	return appendString(b, 2, m.Dst)
}

func (m *DecPath) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.Src = f.str()
		case 2:
			m.Dst = f.str()
		}
		return nil
	})
}

// Transfer accepts a money transfer.
type Transfer struct {
	Wxid string
	TfID string
	TaID string
}

func (m *Transfer) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Wxid)
	b = appendString(b, 2, m.TfID)
	return appendString(b, 3, m.TaID)
}

func (m *Transfer) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.Wxid = f.str()
		case 2:
			m.TfID = f.str()
		case 3:
			m.TaID = f.str()
		}
		return nil
	})
}

type AttachMsg struct {
	ID    uint64
	Thumb string
	Extra string
}

func (m *AttachMsg) appendTo(b []byte) []byte {
	b = appendUint64(b, 1, m.ID)
	b = appendString(b, 2, m.Thumb)
	return appendString(b, 3, m.Extra)
}

func (m *AttachMsg) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.ID = f.uint64()
		case 2:
			m.Thumb = f.str()
		case 3:
			m.Extra = f.str()
		}
		return nil
	})
}

type AudioMsg struct {
	ID  uint64
	Dir string
}

func (m *AudioMsg) appendTo(b []byte) []byte {
	b = appendUint64(b, 1, m.ID)
	return appendString(b, 2, m.Dir)
}

func (m *AudioMsg) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.ID = f.uint64()
		case 2:
			m.Dir = f.str()
		}
		return nil
	})
}

// RichText is a link card.
type RichText struct {
	Name     string
	Account  string
	Title    string
	Digest   string
	URL      string
	ThumbURL string
	Receiver string
}

func (m *RichText) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Account)
	b = appendString(b, 3, m.Title)
	b = appendString(b, 4, m.Digest)
	b = appendString(b, 5, m.URL)
	b = appendString(b, 6, m.ThumbURL)
	return appendString(b, 7, m.Receiver)
}

func (m *RichText) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.Name = f.str()
		case 2:
			m.Account = f.str()
		case 3:
			m.Title = f.str()
		case 4:
			m.Digest = f.str()
		case 5:
			m.URL = f.str()
		case 6:
			m.ThumbURL = f.str()
		case 7:
			m.Receiver = f.str()
		}
		return nil
	})
}

// PatMsg pats a room member.
type PatMsg struct {
	RoomID string
	Wxid   string
}

func (m *PatMsg) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.RoomID)
	return appendString(b, 2, m.Wxid)
}

func (m *PatMsg) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.RoomID = f.str()
		case 2:
			m.Wxid = f.str()
		}
		return nil
	})
}

type ForwardMsg struct {
	ID       uint64
	Receiver string
}

func (m *ForwardMsg) appendTo(b []byte) []byte {
	b = appendUint64(b, 1, m.ID)
	return appendString(b, 2, m.Receiver)
}

func (m *ForwardMsg) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.ID = f.uint64()
		case 2:
			m.Receiver = f.str()
		}
		return nil
	})
}

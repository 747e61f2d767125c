package wcfpb

import "fmt"

// RoomData is the roomdata.proto blob stored in ChatRoom.RoomData.
type RoomData struct {
	Members      []*RoomMember
	Field2       int32
	Field3       int32
	Field4       int32
	RoomCapacity int32
	Field6       int32
	Field7       int64
	Field8       int64
}

// RoomMember is one entry of RoomData.Members.
type RoomMember struct {
	Wxid  string
	Name  string
	State int32
}

func (m *RoomMember) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Wxid)
	b = appendString(b, 2, m.Name)
	return appendInt32(b, 3, m.State)
}

func (m *RoomMember) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			m.Wxid = f.str()
		case 2:
			m.Name = f.str()
		case 3:
			m.State = f.int32()
		}
		return nil
	})
}

func (m *RoomData) appendTo(b []byte) []byte {
	for _, mem := range m.Members {
		b = appendMessage(b, 1, mem)
	}
	b = appendInt32(b, 2, m.Field2)
	b = appendInt32(b, 3, m.Field3)
	b = appendInt32(b, 4, m.Field4)
	b = appendInt32(b, 5, m.RoomCapacity)
	b = appendInt32(b, 6, m.Field6)
	b = appendInt64(b, 7, m.Field7)
	return appendInt64(b, 8, m.Field8)
}

func (m *RoomData) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			if !f.isMessage() {
				return nil
			}
			mem := new(RoomMember)
			if err := mem.unmarshal(f.b); err != nil {
				return err
			}
			m.Members = append(m.Members, mem)
		case 2:
			m.Field2 = f.int32()
		case 3:
			m.Field3 = f.int32()
		case 4:
			m.Field4 = f.int32()
		case 5:
			m.RoomCapacity = f.int32()
		case 6:
			m.Field6 = f.int32()
		case 7:
			m.Field7 = f.int64()
		case 8:
			m.Field8 = f.int64()
		}
		return nil
	})
}

// Marshal encodes the room data blob.
func (m *RoomData) Marshal() []byte { return m.appendTo(nil) }

// UnmarshalRoomData decodes a RoomData blob.
func UnmarshalRoomData(b []byte) (*RoomData, error) {
	rd := &RoomData{}
	if err := rd.unmarshal(b); err != nil {
		return nil, fmt.Errorf("wcfpb: decode room data: %w", err)
	}
	return rd, nil
}

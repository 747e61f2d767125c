package wcf

import (
	"strings"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/wcfpb"
)

// ContactDB is the database holding contacts and rooms.
const ContactDB = "MicroMsg.db"

const (
	contactSelect = `SELECT * FROM Contact LEFT JOIN ContactHeadImgUrl ON Contact.UserName = ContactHeadImgUrl.usrName`

	chatRoomSelect = `SELECT ChatRoom.ChatRoomName AS ChatRoomName, ChatRoom.RoomData AS RoomData, ` +
		`ContactHeadImgUrl.smallHeadImgUrl AS smallHeadImgUrl, ChatRoomInfo.Announcement AS Announcement ` +
		`FROM ChatRoom ` +
		`LEFT JOIN ContactHeadImgUrl ON ChatRoom.ChatRoomName = ContactHeadImgUrl.usrName ` +
		`LEFT JOIN ChatRoomInfo ON ChatRoom.ChatRoomName = ChatRoomInfo.ChatRoomName`
)

// ContactInfo is one row of the Contact table. Empty strings mean the column
// was absent or blank.
type ContactInfo struct {
	Wxid            string
	Alias           string
	DelFlag         int64
	Type            int64
	Remark          string
	NickName        string
	PYInitial       string
	QuanPin         string
	RemarkPYInitial string
	RemarkQuanPin   string
	SmallHeadURL    string
	BigHeadURL      string
}

// ChatRoom is one row of the ChatRoom table joined with its avatar and
// announcement.
type ChatRoom struct {
	RoomID       string
	RoomData     *wcfpb.RoomData
	HeadImgURL   string
	Announcement string
}

// DisplayName prefers the remark over the nickname.
func (ci *ContactInfo) DisplayName() string {
	if ci.Remark != "" {
		return ci.Remark
	}
	return ci.NickName
}

// ContactFromRow maps a Contact row by column name. Unknown columns are
// ignored.
func ContactFromRow(row *wcfpb.DbRow) *ContactInfo {
	ci := &ContactInfo{}
	if row == nil {
		return ci
	}
	for _, f := range row.Fields {
		switch f.Column {
		case "UserName":
			ci.Wxid = f.Text()
		case "Alias":
			ci.Alias = f.Text()
		case "DelFlag":
			ci.DelFlag, _ = f.Int()
		case "Type":
			ci.Type, _ = f.Int()
		case "Remark":
			ci.Remark = f.Text()
		case "NickName":
			ci.NickName = f.Text()
		case "PYInitial":
			ci.PYInitial = f.Text()
		case "QuanPin":
			ci.QuanPin = f.Text()
		case "RemarkPYInitial":
			ci.RemarkPYInitial = f.Text()
		case "RemarkQuanPin":
			ci.RemarkQuanPin = f.Text()
		case "smallHeadImgUrl":
			ci.SmallHeadURL = f.Text()
		case "bigHeadImgUrl":
			ci.BigHeadURL = f.Text()
		}
	}
	return ci
}

// ChatRoomFromRow maps a ChatRoom row. A RoomData blob that does not decode
// leaves an empty RoomData.
func ChatRoomFromRow(row *wcfpb.DbRow) *ChatRoom {
	room := &ChatRoom{RoomData: &wcfpb.RoomData{}}
	if row == nil {
		return room
	}
	for _, f := range row.Fields {
		switch f.Column {
		case "ChatRoomName":
			room.RoomID = f.Text()
		case "RoomData":
			if rd, err := wcfpb.UnmarshalRoomData(f.Content); err == nil {
				room.RoomData = rd
			}
		case "smallHeadImgUrl":
			room.HeadImgURL = f.Text()
		case "Announcement":
			room.Announcement = f.Text()
		}
	}
	return room
}

// QueryAllContactInfo reads every contact from the local database.
func (c *Client) QueryAllContactInfo() ([]*ContactInfo, error) {
	rows, err := c.ExecDBQuery(ContactDB, contactSelect)
	if err != nil {
		return nil, err
	}
	out := make([]*ContactInfo, 0, len(rows))
	for _, row := range rows {
		out = append(out, ContactFromRow(row))
	}
	return out, nil
}

// QueryContactInfo reads one contact. It returns nil when no row matches.
func (c *Client) QueryContactInfo(wxid string) (*ContactInfo, error) {
	rows, err := c.ExecDBQuery(ContactDB, contactSelect+" WHERE Contact.UserName = "+quote(wxid))
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return ContactFromRow(rows[0]), nil
}

// QueryChatRoomInfo reads one room. It returns nil when no row matches.
func (c *Client) QueryChatRoomInfo(roomID string) (*ChatRoom, error) {
	rows, err := c.ExecDBQuery(ContactDB, chatRoomSelect+" WHERE ChatRoom.ChatRoomName = "+quote(roomID))
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return ChatRoomFromRow(rows[0]), nil
}

// quote renders s as an SQLite string literal in double quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

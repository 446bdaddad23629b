package models

// ShopLinks is the per-shop display document shown on the public landing
// page. It is persisted as a JSON file under the shop data directory, one
// file per shop.
type ShopLinks struct {
	Facebook    string `json:"facebook"`
	Instagram   string `json:"instagram"`
	Whatsapp    string `json:"whatsapp"`
	DisplayName string `json:"display_name"`
	HeaderText  string `json:"header_text"`
	Address     string `json:"address"`
	MapURL      string `json:"map_url"`
}

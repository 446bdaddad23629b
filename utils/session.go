package utils

import "fmt"

// ShopSessionKey returns the session key holding a shop's login flag.
// The flag is scoped per shop so one browser session can stay logged in
// to several shops at once.
func ShopSessionKey(shopName string) string {
	return fmt.Sprintf("%s_logged_in", shopName)
}

package preview

// ChannelID identifies a rendering surface.
type ChannelID string

const (
	SearchDesktop ChannelID = "search-desktop"
	SearchMobile  ChannelID = "search-mobile"
	SocialCardA   ChannelID = "social-card-a"
	SocialCardB   ChannelID = "social-card-b"
)

// Channel holds the character budgets of one surface. A zero URLBudget means
// the channel does not render a URL line.
type Channel struct {
	ID                ChannelID
	TitleBudget       int
	DescriptionBudget int
	URLBudget         int
	Social            bool
	ImageSize         string
}

// Channels in rendering order.
var Channels = []Channel{
	{ID: SearchDesktop, TitleBudget: 60, DescriptionBudget: 160, URLBudget: 70},
	{ID: SearchMobile, TitleBudget: 50, DescriptionBudget: 140, URLBudget: 50},
	{ID: SocialCardA, TitleBudget: 100, DescriptionBudget: 300, Social: true, ImageSize: "1200x630px"},
	{ID: SocialCardB, TitleBudget: 70, DescriptionBudget: 200, Social: true, ImageSize: "1200x600px"},
}

// Lookup returns the channel with the given id.
func Lookup(id ChannelID) (Channel, bool) {
	for _, c := range Channels {
		if c.ID == id {
			return c, true
		}
	}
	return Channel{}, false
}

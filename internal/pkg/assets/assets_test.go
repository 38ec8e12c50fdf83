package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clashcrash/board_go_server/config"
)

func newTestResolver() *Resolver {
	return NewResolver(&config.AssetsConfig{
		BaseURL:           "https://board.example.com/api/img?name=",
		DefaultProfileImg: "baseUserImg.png",
	})
}

func TestResolver_URL(t *testing.T) {
	r := newTestResolver()

	assert.Equal(t, "https://board.example.com/api/img?name=a.png", r.URL("a.png"))
	assert.Equal(t, "", r.URL(""))
}

func TestResolver_ProfileURL_Default(t *testing.T) {
	r := newTestResolver()

	assert.Equal(t, "https://board.example.com/api/img?name=baseUserImg.png", r.ProfileURL(nil))

	empty := ""
	assert.Equal(t, "https://board.example.com/api/img?name=baseUserImg.png", r.ProfileURL(&empty))
}

func TestResolver_ProfileURL_Custom(t *testing.T) {
	r := newTestResolver()

	img := "me.jpg"
	assert.Equal(t, "https://board.example.com/api/img?name=me.jpg", r.ProfileURL(&img))
}

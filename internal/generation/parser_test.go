package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandforge/internal/types"
)

func TestParseResponse_Labeled(t *testing.T) {
	raw := `HEADLINE: Fresh Pasta Every Night
SUBHEADLINE: Made by hand since 1998
CAPTION: Our chefs roll fresh pasta daily so every plate tastes like Sunday dinner.
CTA: Book a table tonight
HASHTAGS: #pasta #freshfood #brooklyn`

	p, err := parseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Pasta Every Night", p.Headline)
	assert.Equal(t, "Made by hand since 1998", p.Subheadline)
	assert.Equal(t, "Our chefs roll fresh pasta daily so every plate tastes like Sunday dinner.", p.Caption)
	assert.Equal(t, "Book a table tonight", p.CallToAction)
	assert.Equal(t, []string{"#pasta", "#freshfood", "#brooklyn"}, p.Hashtags)
}

func TestParseResponse_LabelVariants(t *testing.T) {
	raw := `headline: Lowercase Labels Work Fine
caption: Models drift on casing but the parser keeps up with them.
Call To Action: Visit us today`

	p, err := parseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Lowercase Labels Work Fine", p.Headline)
	assert.Equal(t, "Visit us today", p.CallToAction)
}

func TestParseResponse_MarkdownTrimmed(t *testing.T) {
	raw := `*HEADLINE: Bold Claims Ahead*
*CAPTION: Some models wrap every line in emphasis markers anyway.*`

	p, err := parseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Bold Claims Ahead", p.Headline)
}

func TestParseResponse_UnlabeledFallback(t *testing.T) {
	raw := `Great Coffee Fast
Come in for a cup.
We roast every bean in-house and pull every shot to order, all day long.`

	p, err := parseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Great Coffee Fast", p.Headline)
	// Longest remaining line becomes the caption.
	assert.Equal(t, "We roast every bean in-house and pull every shot to order, all day long.", p.Caption)
}

func TestParseResponse_PostProcessed(t *testing.T) {
	raw := `HEADLINE: PAYA: Fast, Easy, Better
CAPTION: Checkout that feels instant, every every time you pay.`

	p, err := parseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Fast, Easy, Better", p.Headline)
	assert.Equal(t, "Checkout that feels instant, every time you pay.", p.Caption)
}

func TestParseResponse_Errors(t *testing.T) {
	_, err := parseResponse("")
	assert.Error(t, err)

	_, err = parseResponse("CAPTION: A caption with no headline at all in the response.")
	assert.Error(t, err)
}

func TestSplitHashtags(t *testing.T) {
	tags := splitHashtags(" #pizza, food,, ##nyc ")
	assert.Equal(t, []string{"#pizza", "#food", "#nyc"}, tags)
}

func TestHashtagCount(t *testing.T) {
	assert.Equal(t, 5, hashtagCount("Instagram"))
	assert.Equal(t, 2, hashtagCount("twitter"))
	assert.Equal(t, 2, hashtagCount("x"))
	assert.Equal(t, 3, hashtagCount("tiktok"))
}

func TestSizeHashtags(t *testing.T) {
	req := types.ContentRequest{
		BusinessName:     "Paya",
		BusinessCategory: "technology",
		Platform:         "instagram",
		Location:         "Austin",
	}

	t.Run("pads to platform size", func(t *testing.T) {
		tags := sizeHashtags([]string{"#checkout"}, req)
		assert.Len(t, tags, 5)
		assert.Equal(t, "#checkout", tags[0])
		assert.Contains(t, tags, "#technology")
		assert.Contains(t, tags, "#paya")
	})

	t.Run("truncates to platform size", func(t *testing.T) {
		twitterReq := req
		twitterReq.Platform = "twitter"
		tags := sizeHashtags([]string{"#a", "#b", "#c", "#d"}, twitterReq)
		assert.Equal(t, []string{"#a", "#b"}, tags)
	})

	t.Run("skips defaults already present", func(t *testing.T) {
		tags := sizeHashtags([]string{"#Technology", "#paya"}, req)
		assert.Len(t, tags, 5)
		count := 0
		for _, tag := range tags {
			if tag == "#technology" || tag == "#Technology" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestSanitizeTag(t *testing.T) {
	assert.Equal(t, "luigispizza", sanitizeTag("Luigi's Pizza!"))
	assert.Equal(t, "local", sanitizeTag("!!!"))
}

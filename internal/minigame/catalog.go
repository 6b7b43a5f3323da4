package minigame

type CommentType string

const (
	CommentPositive       CommentType = "positive"
	CommentNeutral        CommentType = "neutral"
	CommentMildlyNegative CommentType = "mildly_negative"
	CommentToxicSpam      CommentType = "toxic_spam"
)

type ResponseOption struct {
	Text     string `json:"text"`
	Points   int    `json:"points"`
	Feedback string `json:"feedback"`
	Best     bool   `json:"-"`
}

type Comment struct {
	ID      string           `json:"id"`
	Author  string           `json:"author"`
	Text    string           `json:"text"`
	Type    CommentType      `json:"type"`
	Options []ResponseOption `json:"options"`
}

var Comments = []Comment{
	{
		ID: "pos1", Author: "LoyalFan01", Type: CommentPositive,
		Text: "This is the best video I've seen in weeks! Keep it up!",
		Options: []ResponseOption{
			{Text: "Thank you so much! 😊", Points: 5, Feedback: "Perfect reply!", Best: true},
			{Text: "I know.", Points: 0, Feedback: "A bit arrogant, don't you think?"},
			{Text: "Ignore", Points: -1, Feedback: "Engagement is key."},
		},
	},
	{
		ID: "pos2", Author: "NewSub44", Type: CommentPositive,
		Text: "Just found your channel and subscribed already! Great content.",
		Options: []ResponseOption{
			{Text: "Welcome! Thanks for subscribing.", Points: 5, Feedback: "Excellent welcome!", Best: true},
			{Text: "Ok.", Points: 1, Feedback: "You could be more enthusiastic."},
			{Text: "Spam (Report)", Points: -5, Feedback: "Not spam! That's a new fan."},
		},
	},
	{
		ID: "neu1", Author: "Asker7", Type: CommentNeutral,
		Text: "What software do you use to edit your videos?",
		Options: []ResponseOption{
			{Text: `I use "EditProX" (answer kindly)`, Points: 3, Feedback: "Useful info!", Best: true},
			{Text: "It's a secret.", Points: 0, Feedback: "Sharing is good for the community."},
			{Text: "Ignore", Points: -1, Feedback: "A missed chance to engage."},
		},
	},
	{
		ID: "neu2", Author: "CuriousGeorge", Type: CommentNeutral,
		Text: "Could you make a video about [topic X related to the channel]?",
		Options: []ResponseOption{
			{Text: "Great idea! I'll consider it.", Points: 3, Feedback: "Audiences love being heard!", Best: true},
			{Text: "I don't take requests.", Points: 0, Feedback: "A bit blunt, but fair."},
			{Text: "Maybe. (Vague)", Points: 1, Feedback: "Try to be clearer."},
		},
	},
	{
		ID: "neg1", Author: "ConstructiveCritic", Type: CommentMildlyNegative,
		Text: "The audio was a bit low in this one, but the idea is good.",
		Options: []ResponseOption{
			{Text: "Thanks for the feedback, I'll keep it in mind.", Points: 4, Feedback: "Maturity first!", Best: true},
			{Text: "My audio is perfect.", Points: -2, Feedback: "Refusing criticism doesn't help."},
			{Text: "Delete comment", Points: -3, Feedback: "That was constructive criticism..."},
		},
	},
	{
		ID: "neg2", Author: "Honest", Type: CommentMildlyNegative,
		Text: "I found this video a little boring...",
		Options: []ResponseOption{
			{Text: "Sorry you didn't enjoy it, I'll try to improve!", Points: 3, Feedback: "Good attitude!", Best: true},
			{Text: "Then don't watch it.", Points: -2, Feedback: "That drives viewers away."},
			{Text: "Ignore", Points: 0, Feedback: "Sometimes saying nothing is better."},
		},
	},
	{
		ID: "spam1", Author: "BotSpammer77", Type: CommentToxicSpam,
		Text: "BUY MY COURSES!! MAKE MONEY NOW!! LINK IN BIO!",
		Options: []ResponseOption{
			{Text: "Report as spam and delete", Points: 5, Feedback: "Clean community!", Best: true},
			{Text: `Reply: "No, thanks."`, Points: -1, Feedback: "Don't engage with spam."},
			{Text: "Ask for more details", Points: -3, Feedback: "It's a trap!"},
		},
	},
	{
		ID: "spam2", Author: "ImTheBest", Type: CommentToxicSpam,
		Text: "SUB 4 SUB?? ANSWER QUICK!!",
		Options: []ResponseOption{
			{Text: "Delete comment", Points: 4, Feedback: "Keep your comment section relevant.", Best: true},
			{Text: `Reply: "Sure, subbed!"`, Points: -5, Feedback: "Sub 4 sub is not real growth."},
			{Text: "Ignore", Points: 1, Feedback: "Deleting is better for spam."},
		},
	},
	{
		ID: "pos3", Author: "LearningWithYou", Type: CommentPositive,
		Text: "Thanks! This tutorial helped me understand it so much.",
		Options: []ResponseOption{
			{Text: "So glad it helped! 😄", Points: 5, Feedback: "Excellent interaction!", Best: true},
			{Text: "You're welcome.", Points: 2, Feedback: "Short but polite."},
			{Text: "Ask them to share the video", Points: 0, Feedback: "A bit pushy for this comment."},
		},
	},
	{
		ID: "neg3", Author: "TotallyLost", Type: CommentMildlyNegative,
		Text: "You didn't explain the XYZ part well, very confusing.",
		Options: []ResponseOption{
			{Text: "I'll try to be clearer next time, which part confused you?", Points: 4, Feedback: "Looking to improve is key!", Best: true},
			{Text: "The problem is you, not my explanation.", Points: -3, Feedback: "That's not productive."},
			{Text: "Ignore", Points: 0, Feedback: "You could have learned something."},
		},
	},
}

type ComponentType string

const (
	ComponentBackground ComponentType = "background"
	ComponentObject     ComponentType = "object"
	ComponentText       ComponentType = "text"
)

var ComponentTypes = []ComponentType{ComponentBackground, ComponentObject, ComponentText}

type Quality string

const (
	QualityGood    Quality = "good"
	QualityNeutral Quality = "neutral"
	QualityBad     Quality = "bad"
)

type ThumbnailComponent struct {
	ID          string        `json:"id"`
	Type        ComponentType `json:"componentType"`
	DisplayName string        `json:"displayName"`
	Quality     Quality       `json:"quality"`
	Points      int           `json:"points"`
}

var ThumbnailComponents = []ThumbnailComponent{
	{ID: "bg_red_solid", Type: ComponentBackground, DisplayName: "Solid Red", Quality: QualityGood, Points: 8},
	{ID: "bg_blue_gradient", Type: ComponentBackground, DisplayName: "Blue Gradient", Quality: QualityGood, Points: 10},
	{ID: "bg_grey_plain", Type: ComponentBackground, DisplayName: "Plain Grey", Quality: QualityNeutral, Points: 3},
	{ID: "bg_yellow_bright", Type: ComponentBackground, DisplayName: "Bright Yellow", Quality: QualityGood, Points: 7},
	{ID: "bg_black_solid", Type: ComponentBackground, DisplayName: "Solid Black", Quality: QualityNeutral, Points: 5},
	{ID: "bg_green_subtle", Type: ComponentBackground, DisplayName: "Soft Green", Quality: QualityGood, Points: 8},
	{ID: "bg_purple_vibrant", Type: ComponentBackground, DisplayName: "Vibrant Purple", Quality: QualityGood, Points: 9},
	{ID: "bg_brown_dull", Type: ComponentBackground, DisplayName: "Dull Brown", Quality: QualityBad, Points: -2},
	{ID: "bg_pink_flashy", Type: ComponentBackground, DisplayName: "Flashy Pink", Quality: QualityNeutral, Points: 4},
	{ID: "bg_white_clean", Type: ComponentBackground, DisplayName: "Clean White", Quality: QualityGood, Points: 6},

	{ID: "obj_rocket", Type: ComponentObject, DisplayName: "Rocket", Quality: QualityGood, Points: 10},
	{ID: "obj_star", Type: ComponentObject, DisplayName: "Star", Quality: QualityGood, Points: 8},
	{ID: "obj_face_surprise", Type: ComponentObject, DisplayName: "Surprised Face", Quality: QualityGood, Points: 9},
	{ID: "obj_thumbs_up", Type: ComponentObject, DisplayName: "Thumbs Up", Quality: QualityGood, Points: 7},
	{ID: "obj_poop", Type: ComponentObject, DisplayName: "Poop Emoji", Quality: QualityBad, Points: -5},
	{ID: "obj_question", Type: ComponentObject, DisplayName: "Question Mark", Quality: QualityNeutral, Points: 3},
	{ID: "obj_fire", Type: ComponentObject, DisplayName: "Fire", Quality: QualityGood, Points: 10},
	{ID: "obj_lightbulb", Type: ComponentObject, DisplayName: "Lightbulb", Quality: QualityGood, Points: 7},
	{ID: "obj_ghost", Type: ComponentObject, DisplayName: "Ghost", Quality: QualityNeutral, Points: 4},
	{ID: "obj_heart", Type: ComponentObject, DisplayName: "Heart", Quality: QualityGood, Points: 8},

	{ID: "txt_epic", Type: ComponentText, DisplayName: `"EPIC!" (Impact)`, Quality: QualityGood, Points: 10},
	{ID: "txt_new", Type: ComponentText, DisplayName: `"NEW VIDEO" (Arial)`, Quality: QualityGood, Points: 7},
	{ID: "txt_boring", Type: ComponentText, DisplayName: `"Interesting" (Times)`, Quality: QualityBad, Points: -3},
	{ID: "txt_clickbait", Type: ComponentText, DisplayName: `"YOU WON'T BELIEVE IT" (Comic Sans)`, Quality: QualityNeutral, Points: 4},
	{ID: "txt_urgent", Type: ComponentText, DisplayName: `"URGENT!" (Impact, Red)`, Quality: QualityGood, Points: 9},
	{ID: "txt_simple", Type: ComponentText, DisplayName: `"Tutorial" (Helvetica)`, Quality: QualityNeutral, Points: 5},
	{ID: "txt_tiny_unreadable", Type: ComponentText, DisplayName: `"secret" (Tiny)`, Quality: QualityBad, Points: -5},
	{ID: "txt_wow", Type: ComponentText, DisplayName: `"WOW!" (Impact, Blue)`, Quality: QualityGood, Points: 10},
	{ID: "txt_question", Type: ComponentText, DisplayName: `"WHAT HAPPENED?" (Bold)`, Quality: QualityGood, Points: 8},
	{ID: "txt_cool_style", Type: ComponentText, DisplayName: `"Cool Style" (Freestyle)`, Quality: QualityNeutral, Points: 3},
}

func LookupComponent(id string) (ThumbnailComponent, bool) {
	for _, c := range ThumbnailComponents {
		if c.ID == id {
			return c, true
		}
	}
	return ThumbnailComponent{}, false
}

type PromptType string

const (
	PromptQuickClick  PromptType = "QUICK_CLICK"
	PromptKeywordType PromptType = "KEYWORD_TYPE"
	PromptEmojiSelect PromptType = "EMOJI_SELECT"
)

type StreamPrompt struct {
	ID               string     `json:"id"`
	Type             PromptType `json:"type"`
	DisplayText      string     `json:"displayText"`
	ButtonText       string     `json:"buttonText,omitempty"`
	Keyword          string     `json:"keyword,omitempty"`
	Emojis           []string   `json:"emojis,omitempty"`
	CorrectEmoji     string     `json:"-"`
	DurationSeconds  int        `json:"durationSeconds"`
	PointsForSuccess int        `json:"pointsForSuccess"`
	PointsForFailure int        `json:"pointsForFailure"`
}

// DefaultPromptSeconds is the reaction window for prompts that do not set
// their own.
const DefaultPromptSeconds = 7

var StreamPrompts = []StreamPrompt{
	{ID: "qc1", Type: PromptQuickClick, DisplayText: "New SUB! Say hi!", ButtonText: "Hi Sub!", DurationSeconds: 5, PointsForSuccess: 12, PointsForFailure: -8},
	{ID: "qc2", Type: PromptQuickClick, DisplayText: "Someone sent a DONATION! Thank them!", ButtonText: "Thanks for the donation!", DurationSeconds: 5, PointsForSuccess: 15, PointsForFailure: -7},
	{ID: "qc3", Type: PromptQuickClick, DisplayText: "Chat is ON FIRE! Hype them up!", ButtonText: "Let's go team!", DurationSeconds: 6, PointsForSuccess: 10, PointsForFailure: -5},
	{ID: "qc4", Type: PromptQuickClick, DisplayText: "EPIC moment! React!", ButtonText: "Incredible!", DurationSeconds: 5, PointsForSuccess: 13, PointsForFailure: -6},

	{ID: "kw1", Type: PromptKeywordType, DisplayText: "Chat wants to know about the 'SORTEO'", Keyword: "SORTEO", DurationSeconds: 8, PointsForSuccess: 15, PointsForFailure: -10},
	{ID: "kw2", Type: PromptKeywordType, DisplayText: "Announce the 'EXCLUSIVA'!", Keyword: "EXCLUSIVA", DurationSeconds: 7, PointsForSuccess: 14, PointsForFailure: -9},
	{ID: "kw3", Type: PromptKeywordType, DisplayText: "Share the code 'PROMO123'", Keyword: "PROMO123", DurationSeconds: 10, PointsForSuccess: 18, PointsForFailure: -12},
	{ID: "kw4", Type: PromptKeywordType, DisplayText: "They're asking for the 'GUIA'", Keyword: "GUIA", DurationSeconds: 8, PointsForSuccess: 13, PointsForFailure: -8},

	{ID: "em1", Type: PromptEmojiSelect, DisplayText: "Chat is happy! React:", Emojis: []string{"🥳", "😢", "😠"}, CorrectEmoji: "🥳", DurationSeconds: 6, PointsForSuccess: 10, PointsForFailure: -5},
	{ID: "em2", Type: PromptEmojiSelect, DisplayText: "Something funny happened! React:", Emojis: []string{"😂", "🤔", "😱"}, CorrectEmoji: "😂", DurationSeconds: 6, PointsForSuccess: 12, PointsForFailure: -6},
	{ID: "em3", Type: PromptEmojiSelect, DisplayText: "Show your support! React:", Emojis: []string{"👍", "👎", "🤷"}, CorrectEmoji: "👍", DurationSeconds: 5, PointsForSuccess: 11, PointsForFailure: -5},
	{ID: "em4", Type: PromptEmojiSelect, DisplayText: "Surprise in chat! React:", Emojis: []string{"😮", "😴", "😐"}, CorrectEmoji: "😮", DurationSeconds: 6, PointsForSuccess: 12, PointsForFailure: -7},
}

func (p StreamPrompt) window() int {
	if p.DurationSeconds > 0 {
		return p.DurationSeconds
	}
	return DefaultPromptSeconds
}

package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars Emoji = "📖" // reading configuration
	EmojiConfig  Emoji = "🔧" // showing configuration
	EmojiFile    Emoji = "📋" // reading schedule files
	EmojiMute    Emoji = "🔇" // quiet mode

	EmojiCalendar Emoji = "📅" // a schedule being previewed
	EmojiAlarm    Emoji = "⏰" // a computed occurrence
	EmojiNow      Emoji = "🏃" // an occurrence that is due immediately
	EmojiNever    Emoji = "🤷" // no occurrence before the bound
	EmojiBye      Emoji = "👋" // bye!

	EmojiUserError Emoji = "😡" // mistakes made by users
	EmojiError     Emoji = "😞" // errors that are not (directly) caused by user errors
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "

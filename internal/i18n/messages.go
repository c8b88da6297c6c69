package i18n

// Message IDs. The English file under locales/ is the source of truth for the texts.
const (
	MsgAppTitle       = "app_title"
	MsgMenu           = "menu"
	MsgOpenMenu       = "open_menu"
	MsgCloseMenu      = "close_menu"
	MsgAdd            = "add"
	MsgButtonClicked  = "button_clicked"
	MsgCategory       = "category"
	MsgInitializing   = "initializing"
	MsgQuitting       = "quitting"
	MsgHelpTitle      = "help_title"
	MsgHelpClose      = "help_close"
	MsgLogTitle       = "log_title"
	MsgLogCopied      = "log_copied"
	MsgLogCopyFailed  = "log_copy_failed"
	MsgDroppedLogs    = "dropped_logs"
	MsgScreenScaffold = "screen_scaffold"
	MsgScreenBackdrop = "screen_backdrop"

	MsgKeyUp     = "key_up"
	MsgKeyDown   = "key_down"
	MsgKeyLeft   = "key_left"
	MsgKeyRight  = "key_right"
	MsgKeySelect = "key_select"
	MsgKeyMenu   = "key_menu"
	MsgKeyClose  = "key_close"
	MsgKeyFab    = "key_fab"
	MsgKeyJump   = "key_jump"
	MsgKeySwitch = "key_switch"
	MsgKeyHelp   = "key_help"
	MsgKeyLog    = "key_log"
	MsgKeyCopy   = "key_copy"
	MsgKeyQuit   = "key_quit"
)

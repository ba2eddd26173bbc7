package locale

// Message keys. Every key listed in RequiredMessages must be present in a locale file.
const (
	MsgBannerVersion  = "banner_version"
	MsgBannerReport   = "banner_report"
	MsgDate           = "date"
	MsgHelpHint       = "help_hint"
	MsgHelpFooter     = "help_footer"
	MsgHelpFirstMove  = "help_first_move"
	MsgInfoBackground = "info_background"
	MsgFarewell       = "farewell"
	MsgInvalidCommand = "invalid_command"

	MsgLookLocation  = "look_location"
	MsgLookItem      = "look_item"
	MsgLookContainer = "look_container"
	MsgLookPorts     = "look_ports"
	MsgLookPort      = "look_port"
	MsgPortOpen      = "port_open"
	MsgPortClosed    = "port_closed"

	MsgInventoryEmpty  = "inventory_empty"
	MsgInventoryHeader = "inventory_header"

	MsgSearchStart    = "search_start"
	MsgSearchContents = "search_contents"
	MsgSearchEmpty    = "search_empty"
	MsgSearchMissing  = "search_missing"
	MsgLeaveOK        = "leave_ok"
	MsgLeaveRefused   = "leave_refused"

	MsgGoOK      = "go_ok"
	MsgGoClosed  = "go_closed"
	MsgGoMissing = "go_missing"
	MsgGoInside  = "go_inside"

	MsgTakeAllYou     = "take_all_you"
	MsgTakeAllTake    = "take_all_take"
	MsgTakeAllThings  = "take_all_things"
	MsgTakeAllRefused = "take_all_refused"
	MsgTakeAllEmpty   = "take_all_empty"
	MsgTakeOK         = "take_ok"
	MsgTakeRefused    = "take_refused"
	MsgTakeMissing    = "take_missing"
	MsgTakeDuplicate  = "take_duplicate"

	MsgUseRefused    = "use_refused"
	MsgUseMissing    = "use_missing"
	MsgDropOK        = "drop_ok"
	MsgDropMissing   = "drop_missing"
	MsgDropDuplicate = "drop_duplicate"

	MsgSkipOn       = "skip_on"
	MsgSkipOff      = "skip_off"
	MsgSetNameOK    = "setname_ok"
	MsgSetNameBlank = "setname_blank"

	MsgPaper1 = "paper_1"
	MsgPaper2 = "paper_2"
	MsgPaper3 = "paper_3"
	MsgPaper4 = "paper_4"

	MsgDriveTransfer = "drive_transfer"
	MsgDriveEmpty    = "drive_empty"
	MsgDriveNoLaptop = "drive_no_laptop"

	MsgJumpsuit1 = "jumpsuit_1"
	MsgJumpsuit2 = "jumpsuit_2"
	MsgJumpsuit3 = "jumpsuit_3"

	MsgGreenhouse1 = "greenhouse_1"
	MsgGreenhouse2 = "greenhouse_2"

	MsgCameraIntro     = "camera_intro"
	MsgCameraResult    = "camera_result"
	MsgCameraNoWindows = "camera_no_windows"
	MsgPictureRubbish  = "picture_rubbish"
	MsgPictureNice     = "picture_nice"
	MsgPictureGood     = "picture_beautiful"
	MsgPictureName     = "picture_name"
	MsgPictureKeyword  = "picture_keyword"
	MsgPictureDesc     = "picture_desc"

	MsgToilet = "toilet"

	MsgBedEnter     = "bed_enter"
	MsgBedSleep     = "bed_sleep"
	MsgBedNotTired  = "bed_not_tired"
	MsgOutfitDouble = "outfit_double"

	MsgLaptopSticker = "laptop_sticker"
	MsgLaptopOn      = "laptop_on"
	MsgLaptopOff     = "laptop_off"
	MsgLaptopInvalid = "laptop_invalid"

	MsgBrowsePrompt     = "browse_prompt"
	MsgBrowseNoGUI      = "browse_no_gui"
	MsgBrowseOhWell     = "browse_oh_well"
	MsgBrowseInvalidURL = "browse_invalid_url"
	MsgBrowseOffline    = "browse_offline"

	MsgFilesNone   = "files_none"
	MsgFilesHeader = "files_header"
	MsgFilesEntry  = "files_entry"

	MsgMessengerContacts  = "messenger_contacts"
	MsgMessengerPrompt    = "messenger_prompt"
	MsgMessengerUnknown   = "messenger_unknown"
	MsgMessengerCancelled = "messenger_cancelled"
	MsgMessengerPictures  = "messenger_pictures"
	MsgMessengerWhich     = "messenger_which"
	MsgPictureNotPicture  = "picture_not_picture"
	MsgPictureMissing     = "picture_missing"
	MsgPictureSent        = "picture_sent"
	MsgPictureLikes       = "picture_likes"

	MsgNestedLimit = "nested_limit"

	MsgControlOpen     = "control_open"
	MsgControlButton   = "control_button"
	MsgControlPrompt   = "control_prompt"
	MsgControlDeclined = "control_declined"
	MsgGameOver        = "game_over"
)

// RequiredMessages lists every message key the game looks up.
var RequiredMessages = []string{
	MsgBannerVersion, MsgBannerReport, MsgDate, MsgHelpHint, MsgHelpFooter, MsgHelpFirstMove,
	MsgInfoBackground, MsgFarewell, MsgInvalidCommand,
	MsgLookLocation, MsgLookItem, MsgLookContainer, MsgLookPorts, MsgLookPort, MsgPortOpen, MsgPortClosed,
	MsgInventoryEmpty, MsgInventoryHeader,
	MsgSearchStart, MsgSearchContents, MsgSearchEmpty, MsgSearchMissing, MsgLeaveOK, MsgLeaveRefused,
	MsgGoOK, MsgGoClosed, MsgGoMissing, MsgGoInside,
	MsgTakeAllYou, MsgTakeAllTake, MsgTakeAllThings, MsgTakeAllRefused, MsgTakeAllEmpty,
	MsgTakeOK, MsgTakeRefused, MsgTakeMissing, MsgTakeDuplicate,
	MsgUseRefused, MsgUseMissing, MsgDropOK, MsgDropMissing, MsgDropDuplicate,
	MsgSkipOn, MsgSkipOff, MsgSetNameOK, MsgSetNameBlank,
	MsgPaper1, MsgPaper2, MsgPaper3, MsgPaper4,
	MsgDriveTransfer, MsgDriveEmpty, MsgDriveNoLaptop,
	MsgJumpsuit1, MsgJumpsuit2, MsgJumpsuit3,
	MsgGreenhouse1, MsgGreenhouse2,
	MsgCameraIntro, MsgCameraResult, MsgCameraNoWindows,
	MsgPictureRubbish, MsgPictureNice, MsgPictureGood, MsgPictureName, MsgPictureKeyword, MsgPictureDesc,
	MsgToilet, MsgBedEnter, MsgBedSleep, MsgBedNotTired, MsgOutfitDouble,
	MsgLaptopSticker, MsgLaptopOn, MsgLaptopOff, MsgLaptopInvalid,
	MsgBrowsePrompt, MsgBrowseNoGUI, MsgBrowseOhWell, MsgBrowseInvalidURL, MsgBrowseOffline,
	MsgFilesNone, MsgFilesHeader, MsgFilesEntry,
	MsgMessengerContacts, MsgMessengerPrompt, MsgMessengerUnknown, MsgMessengerCancelled,
	MsgMessengerPictures, MsgMessengerWhich,
	MsgPictureNotPicture, MsgPictureMissing, MsgPictureSent, MsgPictureLikes,
	MsgNestedLimit,
	MsgControlOpen, MsgControlButton, MsgControlPrompt, MsgControlDeclined, MsgGameOver,
}

// Catalog keys the station is built from.
var (
	RequiredItems      = []string{"laptop", "paper", "drive", "jumpsuit", "greenhouse", "camera", "toilet", "bed"}
	RequiredContainers = []string{"zarya_boxes"}
	RequiredRooms      = []string{"zarya", "unity", "zvezda"}
)

// List keys.
const (
	ListHelp           = "help"
	ListLaptopTutorial = "laptop_tutorial"
	ListControlReadout = "control_readout"
	ListControlFatal   = "control_fatal"
	ListContacts       = "contacts"
)

var RequiredLists = []string{ListHelp, ListLaptopTutorial, ListControlReadout, ListControlFatal, ListContacts}

package handlers

const (
	MsgUploadInvalid        = "A feltöltés nem olvasható."
	MsgUploadNoFiles        = "Nincs feltöltendő fájl."
	MsgUploadNotImage       = "Csak képfájl tölthető fel."
	MsgStorageNotConfigured = "A tárhely nincs beállítva."
)

package service

const (
	MsgUnexpected = "Váratlan hiba történt. Kérjük, próbáld újra."

	MsgBookingNotFound      = "A foglalás nem található."
	MsgQuoteNotFound        = "Az ajánlatkérés nem található."
	MsgCarNotFound          = "Az autó nem található."
	MsgNotificationNotFound = "Az értesítés nem található."

	MsgBookingRegistered        = "A foglalás regisztrálva."
	MsgBookingAlreadyRegistered = "A foglalás már regisztrálva van."
	MsgBookingUnregistered      = "A foglalás regisztrációja visszavonva."
	MsgBookingNotRegistered     = "A foglalás nincs regisztrálva."

	MsgStatusUpdated   = "A státusz frissítve."
	MsgStatusUnchanged = "A státusz már ez az érték."
	MsgInvalidStatus   = "Érvénytelen státusz."
	MsgStatusBackwards = "A státusz nem léptethető vissza."

	MsgPricingUpdated = "Az árazás frissítve."
	MsgInvalidPayload = "A foglalás adatai hibásak, kérjük, ellenőrizd őket."

	MsgMailNotConfigured         = "Az e-mail küldés nincs beállítva."
	MsgInvalidRecipient          = "Hiányzó vagy érvénytelen címzett e-mail cím."
	MsgBookingRequestSent        = "A foglalási ajánlat elküldve."
	MsgFinalizationSent          = "A véglegesítő e-mail elküldve."
	MsgBookingCancelled          = "Lemondott foglaláshoz nem küldhető véglegesítő e-mail."
	MsgEmailSentStatusNotUpdated = "Az e-mail elküldve, de a státusz frissítése nem sikerült."

	MsgCarCreated   = "Az autó létrehozva."
	MsgCarUpdated   = "Az autó frissítve."
	MsgCarDeleted   = "Az autó törölve."
	MsgInvalidCar   = "Hibás autó adatok."
	MsgPlateTaken   = "Ez a rendszám már foglalt."
	MsgMonthlyPrice = "Havi árazásnál pontosan 12 havi ár szükséges."
	MsgDailyTiers   = "A napi sávok küszöbének szigorúan növekednie kell."
	MsgTooManyImage = "Legfeljebb 3 kép tölthető fel."

	MsgNotificationRead = "Értesítés olvasottnak jelölve."
	MsgAllRead          = "Minden értesítés olvasottnak jelölve."
	MsgPromotionDone    = "Az emlékeztetők feldolgozva."
)

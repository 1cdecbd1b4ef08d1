package i18n

var dictionaries = map[string]Copy{
	"en": {
		Locale:                "en",
		BookingRequestSubject: "Your booking request",
		FinalizationSubject:   "Your booking is confirmed",
		GreetingNamed:         "Hi %s,",
		GreetingPlain:         "Hi,",
		BookingRequestIntro:   "Thank you for your enquiry. Please find the details of our offer below.",
		BookingRequestAction:  "Complete your booking",
		FinalizationIntro:     "Your booking has been finalized. Here is a summary of your rental.",
		Outro:                 "If you have any questions, simply reply to this email.",
		BookingCodeLabel:      "Booking code",
		CarLabel:              "Car",
		PeriodLabel:           "Rental period",
		RentalFeeLabel:        "Rental fee",
		InsuranceLabel:        "Insurance",
		DepositLabel:          "Deposit",
		DeliveryFeeLabel:      "Delivery fee",
		ExtrasFeeLabel:        "Extras",
		TotalLabel:            "Total",
		DeliveryLocationLabel: "Handover location",
		NoteLabel:             "Note",
		CoveredByInsurance:    "covered by insurance",
		Slogan:                "Your journey starts here.",
		Signature:             "The rental team",
		DateLayout:            "02 Jan 2006",
	},
	"hu": {
		Locale:                "hu",
		BookingRequestSubject: "Foglalási ajánlat",
		FinalizationSubject:   "Foglalásod véglegesítve",
		GreetingNamed:         "Kedves %s!",
		GreetingPlain:         "Kedves Ügyfelünk!",
		BookingRequestIntro:   "Köszönjük megkeresésedet. Az ajánlat részleteit alább találod.",
		BookingRequestAction:  "Foglalás véglegesítése",
		FinalizationIntro:     "Foglalásodat véglegesítettük. Alább találod a bérlés összefoglalóját.",
		Outro:                 "Kérdés esetén válaszolj erre az e-mailre.",
		BookingCodeLabel:      "Foglalási kód",
		CarLabel:              "Autó",
		PeriodLabel:           "Bérlési időszak",
		RentalFeeLabel:        "Bérleti díj",
		InsuranceLabel:        "Biztosítás",
		DepositLabel:          "Kaució",
		DeliveryFeeLabel:      "Kiszállítási díj",
		ExtrasFeeLabel:        "Extrák",
		TotalLabel:            "Végösszeg",
		DeliveryLocationLabel: "Átvétel helye",
		NoteLabel:             "Megjegyzés",
		CoveredByInsurance:    "a biztosítás fedezi",
		Slogan:                "Utazásod itt kezdődik.",
		Signature:             "A bérlési csapat",
		DateLayout:            "2006. 01. 02.",
	},
	"de": {
		Locale:                "de",
		BookingRequestSubject: "Ihre Buchungsanfrage",
		FinalizationSubject:   "Ihre Buchung ist bestätigt",
		GreetingNamed:         "Hallo %s,",
		GreetingPlain:         "Hallo,",
		BookingRequestIntro:   "Vielen Dank für Ihre Anfrage. Die Details unseres Angebots finden Sie unten.",
		BookingRequestAction:  "Buchung abschließen",
		FinalizationIntro:     "Ihre Buchung wurde abgeschlossen. Hier ist eine Übersicht Ihrer Miete.",
		Outro:                 "Bei Fragen antworten Sie einfach auf diese E-Mail.",
		BookingCodeLabel:      "Buchungscode",
		CarLabel:              "Fahrzeug",
		PeriodLabel:           "Mietzeitraum",
		RentalFeeLabel:        "Mietpreis",
		InsuranceLabel:        "Versicherung",
		DepositLabel:          "Kaution",
		DeliveryFeeLabel:      "Zustellgebühr",
		ExtrasFeeLabel:        "Extras",
		TotalLabel:            "Gesamt",
		DeliveryLocationLabel: "Übergabeort",
		NoteLabel:             "Hinweis",
		CoveredByInsurance:    "durch die Versicherung abgedeckt",
		Slogan:                "Ihre Reise beginnt hier.",
		Signature:             "Ihr Vermietungsteam",
		DateLayout:            "02.01.2006",
	},
	"ro": {
		Locale:                "ro",
		BookingRequestSubject: "Cererea dvs. de rezervare",
		FinalizationSubject:   "Rezervarea dvs. este confirmată",
		GreetingNamed:         "Bună %s,",
		GreetingPlain:         "Bună,",
		BookingRequestIntro:   "Vă mulțumim pentru solicitare. Detaliile ofertei noastre se află mai jos.",
		BookingRequestAction:  "Finalizați rezervarea",
		FinalizationIntro:     "Rezervarea dvs. a fost finalizată. Iată un rezumat al închirierii.",
		Outro:                 "Pentru întrebări, răspundeți la acest e-mail.",
		BookingCodeLabel:      "Cod rezervare",
		CarLabel:              "Mașină",
		PeriodLabel:           "Perioada închirierii",
		RentalFeeLabel:        "Tarif închiriere",
		InsuranceLabel:        "Asigurare",
		DepositLabel:          "Garanție",
		DeliveryFeeLabel:      "Taxă de livrare",
		ExtrasFeeLabel:        "Extra",
		TotalLabel:            "Total",
		DeliveryLocationLabel: "Locul predării",
		NoteLabel:             "Notă",
		CoveredByInsurance:    "acoperită de asigurare",
		Slogan:                "Călătoria dvs. începe aici.",
		Signature:             "Echipa de închirieri",
		DateLayout:            "02.01.2006",
	},
	"fr": {
		Locale:                "fr",
		BookingRequestSubject: "Votre demande de réservation",
		FinalizationSubject:   "Votre réservation est confirmée",
		GreetingNamed:         "Bonjour %s,",
		GreetingPlain:         "Bonjour,",
		BookingRequestIntro:   "Merci pour votre demande. Vous trouverez ci-dessous le détail de notre offre.",
		BookingRequestAction:  "Finaliser la réservation",
		FinalizationIntro:     "Votre réservation est finalisée. Voici le récapitulatif de votre location.",
		Outro:                 "Pour toute question, répondez simplement à cet e-mail.",
		BookingCodeLabel:      "Code de réservation",
		CarLabel:              "Véhicule",
		PeriodLabel:           "Période de location",
		RentalFeeLabel:        "Prix de location",
		InsuranceLabel:        "Assurance",
		DepositLabel:          "Caution",
		DeliveryFeeLabel:      "Frais de livraison",
		ExtrasFeeLabel:        "Suppléments",
		TotalLabel:            "Total",
		DeliveryLocationLabel: "Lieu de remise",
		NoteLabel:             "Remarque",
		CoveredByInsurance:    "couverte par l'assurance",
		Slogan:                "Votre voyage commence ici.",
		Signature:             "L'équipe location",
		DateLayout:            "02/01/2006",
	},
	"es": {
		Locale:                "es",
		BookingRequestSubject: "Su solicitud de reserva",
		FinalizationSubject:   "Su reserva está confirmada",
		GreetingNamed:         "Hola %s,",
		GreetingPlain:         "Hola,",
		BookingRequestIntro:   "Gracias por su consulta. A continuación encontrará los detalles de nuestra oferta.",
		BookingRequestAction:  "Completar la reserva",
		FinalizationIntro:     "Su reserva ha sido finalizada. Este es el resumen de su alquiler.",
		Outro:                 "Si tiene alguna pregunta, responda a este correo.",
		BookingCodeLabel:      "Código de reserva",
		CarLabel:              "Vehículo",
		PeriodLabel:           "Periodo de alquiler",
		RentalFeeLabel:        "Precio del alquiler",
		InsuranceLabel:        "Seguro",
		DepositLabel:          "Fianza",
		DeliveryFeeLabel:      "Gastos de entrega",
		ExtrasFeeLabel:        "Extras",
		TotalLabel:            "Total",
		DeliveryLocationLabel: "Lugar de entrega",
		NoteLabel:             "Nota",
		CoveredByInsurance:    "cubierta por el seguro",
		Slogan:                "Su viaje empieza aquí.",
		Signature:             "El equipo de alquiler",
		DateLayout:            "02/01/2006",
	},
	"it": {
		Locale:                "it",
		BookingRequestSubject: "La sua richiesta di prenotazione",
		FinalizationSubject:   "La sua prenotazione è confermata",
		GreetingNamed:         "Ciao %s,",
		GreetingPlain:         "Ciao,",
		BookingRequestIntro:   "Grazie per la richiesta. Di seguito trova i dettagli della nostra offerta.",
		BookingRequestAction:  "Completa la prenotazione",
		FinalizationIntro:     "La sua prenotazione è stata finalizzata. Ecco il riepilogo del noleggio.",
		Outro:                 "Per qualsiasi domanda, risponda a questa e-mail.",
		BookingCodeLabel:      "Codice prenotazione",
		CarLabel:              "Auto",
		PeriodLabel:           "Periodo di noleggio",
		RentalFeeLabel:        "Costo del noleggio",
		InsuranceLabel:        "Assicurazione",
		DepositLabel:          "Deposito cauzionale",
		DeliveryFeeLabel:      "Costo di consegna",
		ExtrasFeeLabel:        "Extra",
		TotalLabel:            "Totale",
		DeliveryLocationLabel: "Luogo di consegna",
		NoteLabel:             "Nota",
		CoveredByInsurance:    "coperto dall'assicurazione",
		Slogan:                "Il suo viaggio inizia qui.",
		Signature:             "Il team noleggi",
		DateLayout:            "02/01/2006",
	},
	"sk": {
		Locale:                "sk",
		BookingRequestSubject: "Vaša žiadosť o rezerváciu",
		FinalizationSubject:   "Vaša rezervácia je potvrdená",
		GreetingNamed:         "Dobrý deň %s,",
		GreetingPlain:         "Dobrý deň,",
		BookingRequestIntro:   "Ďakujeme za váš dopyt. Podrobnosti našej ponuky nájdete nižšie.",
		BookingRequestAction:  "Dokončiť rezerváciu",
		FinalizationIntro:     "Vaša rezervácia bola dokončená. Tu je prehľad prenájmu.",
		Outro:                 "V prípade otázok odpovedzte na tento e-mail.",
		BookingCodeLabel:      "Kód rezervácie",
		CarLabel:              "Auto",
		PeriodLabel:           "Obdobie prenájmu",
		RentalFeeLabel:        "Cena prenájmu",
		InsuranceLabel:        "Poistenie",
		DepositLabel:          "Záloha",
		DeliveryFeeLabel:      "Poplatok za doručenie",
		ExtrasFeeLabel:        "Doplnky",
		TotalLabel:            "Spolu",
		DeliveryLocationLabel: "Miesto odovzdania",
		NoteLabel:             "Poznámka",
		CoveredByInsurance:    "kryté poistením",
		Slogan:                "Vaša cesta začína tu.",
		Signature:             "Tím autopožičovne",
		DateLayout:            "02.01.2006",
	},
	"cz": {
		Locale:                "cz",
		BookingRequestSubject: "Vaše žádost o rezervaci",
		FinalizationSubject:   "Vaše rezervace je potvrzena",
		GreetingNamed:         "Dobrý den %s,",
		GreetingPlain:         "Dobrý den,",
		BookingRequestIntro:   "Děkujeme za vaši poptávku. Podrobnosti naší nabídky najdete níže.",
		BookingRequestAction:  "Dokončit rezervaci",
		FinalizationIntro:     "Vaše rezervace byla dokončena. Zde je přehled pronájmu.",
		Outro:                 "V případě dotazů odpovězte na tento e-mail.",
		BookingCodeLabel:      "Kód rezervace",
		CarLabel:              "Vůz",
		PeriodLabel:           "Doba pronájmu",
		RentalFeeLabel:        "Cena pronájmu",
		InsuranceLabel:        "Pojištění",
		DepositLabel:          "Kauce",
		DeliveryFeeLabel:      "Poplatek za doručení",
		ExtrasFeeLabel:        "Doplňky",
		TotalLabel:            "Celkem",
		DeliveryLocationLabel: "Místo předání",
		NoteLabel:             "Poznámka",
		CoveredByInsurance:    "kryto pojištěním",
		Slogan:                "Vaše cesta začíná zde.",
		Signature:             "Tým autopůjčovny",
		DateLayout:            "02.01.2006",
	},
	"se": {
		Locale:                "se",
		BookingRequestSubject: "Din bokningsförfrågan",
		FinalizationSubject:   "Din bokning är bekräftad",
		GreetingNamed:         "Hej %s,",
		GreetingPlain:         "Hej,",
		BookingRequestIntro:   "Tack för din förfrågan. Nedan hittar du detaljerna i vårt erbjudande.",
		BookingRequestAction:  "Slutför bokningen",
		FinalizationIntro:     "Din bokning är slutförd. Här är en sammanfattning av din hyra.",
		Outro:                 "Har du frågor kan du svara på detta mejl.",
		BookingCodeLabel:      "Bokningskod",
		CarLabel:              "Bil",
		PeriodLabel:           "Hyresperiod",
		RentalFeeLabel:        "Hyresavgift",
		InsuranceLabel:        "Försäkring",
		DepositLabel:          "Deposition",
		DeliveryFeeLabel:      "Leveransavgift",
		ExtrasFeeLabel:        "Tillägg",
		TotalLabel:            "Totalt",
		DeliveryLocationLabel: "Överlämningsplats",
		NoteLabel:             "Anteckning",
		CoveredByInsurance:    "täcks av försäkringen",
		Slogan:                "Din resa börjar här.",
		Signature:             "Uthyrningsteamet",
		DateLayout:            "2006-01-02",
	},
	"no": {
		Locale:                "no",
		BookingRequestSubject: "Din bestillingsforespørsel",
		FinalizationSubject:   "Din bestilling er bekreftet",
		GreetingNamed:         "Hei %s,",
		GreetingPlain:         "Hei,",
		BookingRequestIntro:   "Takk for henvendelsen. Nedenfor finner du detaljene i tilbudet vårt.",
		BookingRequestAction:  "Fullfør bestillingen",
		FinalizationIntro:     "Bestillingen din er fullført. Her er en oppsummering av leien.",
		Outro:                 "Har du spørsmål, svar gjerne på denne e-posten.",
		BookingCodeLabel:      "Bestillingskode",
		CarLabel:              "Bil",
		PeriodLabel:           "Leieperiode",
		RentalFeeLabel:        "Leiepris",
		InsuranceLabel:        "Forsikring",
		DepositLabel:          "Depositum",
		DeliveryFeeLabel:      "Leveringsgebyr",
		ExtrasFeeLabel:        "Tillegg",
		TotalLabel:            "Totalt",
		DeliveryLocationLabel: "Overleveringssted",
		NoteLabel:             "Merknad",
		CoveredByInsurance:    "dekket av forsikringen",
		Slogan:                "Reisen din starter her.",
		Signature:             "Utleieteamet",
		DateLayout:            "02.01.2006",
	},
	"dk": {
		Locale:                "dk",
		BookingRequestSubject: "Din bookingforespørgsel",
		FinalizationSubject:   "Din booking er bekræftet",
		GreetingNamed:         "Hej %s,",
		GreetingPlain:         "Hej,",
		BookingRequestIntro:   "Tak for din henvendelse. Nedenfor finder du detaljerne i vores tilbud.",
		BookingRequestAction:  "Færdiggør bookingen",
		FinalizationIntro:     "Din booking er færdiggjort. Her er en oversigt over din leje.",
		Outro:                 "Har du spørgsmål, så svar blot på denne e-mail.",
		BookingCodeLabel:      "Bookingkode",
		CarLabel:              "Bil",
		PeriodLabel:           "Lejeperiode",
		RentalFeeLabel:        "Lejepris",
		InsuranceLabel:        "Forsikring",
		DepositLabel:          "Depositum",
		DeliveryFeeLabel:      "Leveringsgebyr",
		ExtrasFeeLabel:        "Tilvalg",
		TotalLabel:            "I alt",
		DeliveryLocationLabel: "Udleveringssted",
		NoteLabel:             "Bemærkning",
		CoveredByInsurance:    "dækket af forsikringen",
		Slogan:                "Din rejse starter her.",
		Signature:             "Udlejningsteamet",
		DateLayout:            "02.01.2006",
	},
	"pl": {
		Locale:                "pl",
		BookingRequestSubject: "Twoje zapytanie o rezerwację",
		FinalizationSubject:   "Twoja rezerwacja jest potwierdzona",
		GreetingNamed:         "Cześć %s,",
		GreetingPlain:         "Cześć,",
		BookingRequestIntro:   "Dziękujemy za zapytanie. Szczegóły naszej oferty znajdziesz poniżej.",
		BookingRequestAction:  "Dokończ rezerwację",
		FinalizationIntro:     "Twoja rezerwacja została sfinalizowana. Oto podsumowanie wynajmu.",
		Outro:                 "W razie pytań po prostu odpowiedz na tę wiadomość.",
		BookingCodeLabel:      "Kod rezerwacji",
		CarLabel:              "Samochód",
		PeriodLabel:           "Okres wynajmu",
		RentalFeeLabel:        "Cena wynajmu",
		InsuranceLabel:        "Ubezpieczenie",
		DepositLabel:          "Kaucja",
		DeliveryFeeLabel:      "Opłata za dostawę",
		ExtrasFeeLabel:        "Dodatki",
		TotalLabel:            "Razem",
		DeliveryLocationLabel: "Miejsce wydania",
		NoteLabel:             "Uwagi",
		CoveredByInsurance:    "pokryta przez ubezpieczenie",
		Slogan:                "Twoja podróż zaczyna się tutaj.",
		Signature:             "Zespół wypożyczalni",
		DateLayout:            "02.01.2006",
	},
}

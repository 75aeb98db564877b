package ucd

// allCodecs lists every known UCD file codec. Grounded on pypuaa.py's
// CODECS list; the order mirrors the Python source's declaration
// order rather than alphabetical order.
func allCodecs() []Codec {
	return []Codec{
		ArabicShapingCodec{},
		BidiBracketsCodec{},
		BidiMirroringCodec{},
		BlocksCodec{},
		CompositionExclusionsCodec{},
		DerivedAgeCodec{},
		NewStringCodec("EastAsianWidth.txt", "East_Asian_Width", "%s;%s\n"),
		NewPropListCodec("emoji-data.txt", []string{
			"Emoji", "Emoji_Presentation",
			"Emoji_Modifier", "Emoji_Modifier_Base",
			"Emoji_Component", "Extended_Pictographic",
		}),
		EquivalentUnifiedIdeographCodec{},
		NewCategoryCodec("GraphemeBreakProperty.txt", "Grapheme_Cluster_Break", []string{
			"Prepend", "CR", "LF", "Control", "Extend",
			"Regional_Indicator", "SpacingMark",
			"L", "V", "T", "LV", "LVT", "ZWJ",
		}),
		HangulSyllableTypeCodec{},
		NewCategoryCodec("IndicPositionalCategory.txt", "Indic_Positional_Category", []string{
			"Right", "Left", "Visual_Order_Left", "Left_And_Right",
			"Top", "Bottom", "Top_And_Bottom", "Top_And_Right", "Top_And_Left",
			"Top_And_Left_And_Right", "Bottom_And_Right", "Bottom_And_Left",
			"Top_And_Bottom_And_Right", "Top_And_Bottom_And_Left", "Overstruck",
		}),
		NewCategoryCodec("IndicSyllabicCategory.txt", "Indic_Syllabic_Category", []string{
			"Bindu", "Visarga", "Avagraha", "Nukta", "Virama", "Pure_Killer",
			"Invisible_Stacker", "Vowel_Independent", "Vowel_Dependent",
			"Vowel", "Consonant_Placeholder", "Consonant", "Consonant_Dead",
			"Consonant_With_Stacker", "Consonant_Prefixed",
			"Consonant_Preceding_Repha", "Consonant_Initial_Postfixed",
			"Consonant_Succeeding_Repha", "Consonant_Subjoined",
			"Consonant_Medial", "Consonant_Final", "Consonant_Head_Letter",
			"Modifying_Letter", "Tone_Letter", "Tone_Mark", "Gemination_Mark",
			"Cantillation_Mark", "Register_Shifter", "Syllable_Modifier",
			"Consonant_Killer", "Non_Joiner", "Joiner", "Number_Joiner",
			"Number", "Brahmi_Joining_Number",
		}),
		JamoCodec{},
		NewStringCodec("LineBreak.txt", "Line_Break", "%s;%s\n"),
		NameAliasesCodec{},
		NewUnihanCodec("NushuSources.txt", []string{"kSrc_NushuDuben", "kReading"}),
		NewPropListCodec("PropList.txt", []string{
			"White_Space", "Bidi_Control", "Join_Control", "Dash",
			"Hyphen", "Quotation_Mark", "Terminal_Punctuation",
			"Other_Math", "Hex_Digit", "ASCII_Hex_Digit",
			"Other_Alphabetic", "Ideographic", "Diacritic",
			"Extender", "Other_Lowercase", "Other_Uppercase",
			"Noncharacter_Code_Point", "Other_Grapheme_Extend",
			"IDS_Binary_Operator", "IDS_Trinary_Operator",
			"IDS_Unary_Operator", "Radical", "Unified_Ideograph",
			"Other_Default_Ignorable_Code_Point", "Deprecated",
			"Soft_Dotted", "Logical_Order_Exception",
			"Other_ID_Start", "Other_ID_Continue",
			"ID_Compat_Math_Continue", "ID_Compat_Math_Start",
			"Sentence_Terminal", "Variation_Selector",
			"Pattern_White_Space", "Pattern_Syntax",
			"Prepended_Concatenation_Mark", "Regional_Indicator",
		}),
		ScriptExtensionsCodec{},
		ScriptsCodec{},
		NewCategoryCodec("SentenceBreakProperty.txt", "Sentence_Break", []string{
			"CR", "LF", "Extend", "Sep", "Format", "Sp",
			"Lower", "Upper", "OLetter", "Numeric",
			"ATerm", "STerm", "Close", "SContinue",
		}),
		SpecialCasingCodec{},
		NewUnihanCodec("Unihan_DictionaryIndices.txt", []string{
			"kCheungBauerIndex", "kCihaiT", "kCowles", "kDaeJaweon",
			"kFennIndex", "kGSR", "kHanYu", "kIRGDaeJaweon",
			"kIRGDaiKanwaZiten", "kIRGHanyuDaZidian", "kIRGKangXi",
			"kKangXi", "kKarlgren", "kLau", "kMatthews", "kMeyerWempe",
			"kMorohashi", "kNelson", "kSBGY", "kSMSZD2003Index",
		}),
		NewUnihanCodec("Unihan_DictionaryLikeData.txt", []string{
			"kAlternateTotalStrokes", "kCangjie", "kCheungBauer",
			"kFenn", "kFourCornerCode", "kFrequency", "kGradeLevel",
			"kHDZRadBreak", "kHKGlyph", "kMojiJoho", "kPhonetic",
			"kStrange", "kUnihanCore2020",
		}),
		NewUnihanCodec("Unihan_IRGSources.txt", []string{
			"kCompatibilityVariant", "kIICore", "kIRG_GSource",
			"kIRG_HSource", "kIRG_JSource", "kIRG_KPSource",
			"kIRG_KSource", "kIRG_MSource", "kIRG_SSource",
			"kIRG_TSource", "kIRG_UKSource", "kIRG_USource",
			"kIRG_VSource", "kRSUnicode", "kTotalStrokes",
		}),
		NewUnihanCodec("Unihan_NumericValues.txt", []string{
			"kAccountingNumeric", "kOtherNumeric", "kPrimaryNumeric",
			"kVietnameseNumeric", "kZhuangNumeric",
		}),
		NewUnihanCodec("Unihan_OtherMappings.txt", []string{
			"kBigFive", "kCCCII", "kCNS1986", "kCNS1992", "kEACC",
			"kGB0", "kGB1", "kGB3", "kGB5", "kGB7", "kGB8", "kHKSCS",
			"kIBMJapan", "kJa", "kJinmeiyoKanji", "kJis0", "kJis1",
			"kJIS0213", "kJoyoKanji", "kKPS0", "kKPS1", "kKSC0", "kKSC1",
			"kKoreanEducationHanja", "kKoreanName", "kMainlandTelegraph",
			"kPseudoGB1", "kTaiwanTelegraph", "kTGH", "kXerox",
		}),
		NewUnihanCodec("Unihan_RadicalStrokeCounts.txt", []string{
			"kRSAdobe_Japan1_6", "kRSJapanese", "kRSKangXi",
			"kRSKanWa", "kRSKorean",
		}),
		NewUnihanCodec("Unihan_Readings.txt", []string{
			"kCantonese", "kDefinition", "kHangul", "kHanyuPinlu",
			"kHanyuPinyin", "kJapanese", "kJapaneseKun", "kJapaneseOn",
			"kKorean", "kMandarin", "kSMSZD2003Readings", "kTang",
			"kTGHZ2013", "kVietnamese", "kXHC1983",
		}),
		NewUnihanCodec("Unihan_Variants.txt", []string{
			"kSemanticVariant", "kSimplifiedVariant",
			"kSpecializedSemanticVariant", "kSpoofingVariant",
			"kTraditionalVariant", "kZVariant",
		}),
		UnicodeDataCodec{},
		NewUnihanCodec("TangutSources.txt", []string{"kTGT_MergedSrc", "kRSTUnicode"}),
		NewStringCodec("VerticalOrientation.txt", "Vertical_Orientation", "%-14s; %s\n"),
		NewCategoryCodec("WordBreakProperty.txt", "Word_Break", []string{
			"Double_Quote", "Single_Quote", "Hebrew_Letter",
			"CR", "LF", "Newline", "Extend", "Regional_Indicator",
			"Format", "Katakana", "ALetter", "MidLetter", "MidNum",
			"MidNumLet", "Numeric", "ExtendNumLet", "ZWJ", "WSegSpace",
		}),
	}
}

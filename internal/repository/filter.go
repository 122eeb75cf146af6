package repository

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campusassist/campus-assist/internal/model"
)

// containsPattern matches documents whose field contains query, ignoring case.
func containsPattern(query string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
}

// faqSearchFilter selects active FAQs whose question in lang or in English
// contains query, or whose keyword set holds the lower-cased query.
func faqSearchFilter(query, lang string) bson.M {
	if !model.IsSupportedLanguage(lang) {
		lang = model.WorkingLanguage
	}
	pattern := containsPattern(query)
	return bson.M{
		"isActive": true,
		"$or": bson.A{
			bson.M{"questions." + lang: pattern},
			bson.M{"questions." + model.WorkingLanguage: pattern},
			bson.M{"keywords": strings.ToLower(query)},
		},
	}
}

// documentSearchFilter selects processed documents whose content contains
// query or that are written in lang.
func documentSearchFilter(query, lang string) bson.M {
	return bson.M{
		"isProcessed": true,
		"$or": bson.A{
			bson.M{"content": containsPattern(query)},
			bson.M{"language": lang},
		},
	}
}

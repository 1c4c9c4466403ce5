package member

import "github.com/jsamuelsen11/listsync/internal/domain"

// Rules returns the validation rules for a member payload. Only the email
// address and status are required; everything else is nullable.
func Rules() domain.Rules {
	statuses := Statuses()
	return domain.Rules{
		FieldEmailAddress:         {Required: true, Type: domain.TypeString, Format: "email"},
		FieldStatus:               {Required: true, Type: domain.TypeString, Enum: statuses},
		FieldStatusIfNew:          {Type: domain.TypeString, Enum: statuses},
		FieldEmailType:            {Type: domain.TypeString, Enum: []string{"html", "text"}},
		FieldMergeFields:          {Type: domain.TypeObject},
		FieldInterests:            {Type: domain.TypeObject},
		FieldLanguage:             {Type: domain.TypeString},
		FieldVIP:                  {Type: domain.TypeBoolean},
		FieldLocation:             {Type: domain.TypeObject},
		FieldMarketingPermissions: {Type: domain.TypeArray},
		FieldIPSignup:             {Type: domain.TypeString},
		FieldTimestampSignup:      {Type: domain.TypeString},
		FieldIPOpt:                {Type: domain.TypeString},
		FieldTimestampOpt:         {Type: domain.TypeString},
		FieldTags:                 {Type: domain.TypeArray},
	}
}

package l10n

const (
	NoResultFoundTrId           = "no_result_found"
	UnexpectedErrorOccurredTrId = "unexpected_error_occurred"
	TooManyRequestsTrId         = "too_many_requests"
	InvalidJsonBodyTrId         = "invalid_json_body"
	UnsupportedMediaTypeTrId    = "unsupported_media_type"
	RequestTimedOutTrId         = "request_timed_out"
	ForbiddenOriginTrId         = "forbidden_origin"

	// contact
	MissingRequiredFieldsTrId  = "missing_required_fields"
	InvalidEmailTrId           = "invalid_email"
	MailNotConfiguredTrId      = "mail_not_configured"
	MailConfigurationErrorTrId = "mail_configuration_error"
	MailDispatchFailedTrId     = "mail_dispatch_failed"
	EmailSentSuccessfullyTrId  = "email_sent_successfully"

	// github
	InvalidReposListTrId  = "invalid_repos_list"
	GithubFetchFailedTrId = "github_fetch_failed"
)

package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Error: "invalid request format",
	}

	ErrUnauthorized = ErrorResponse{
		Error: "unauthorized",
	}

	ErrFileRequired = ErrorResponse{
		Error: "file is required",
	}

	ErrInvalidIDFormat = ErrorResponse{
		Error: "invalid id format",
	}

	ErrMissingRequiredFields = ErrorResponse{
		Error: "title and url are required",
	}
)

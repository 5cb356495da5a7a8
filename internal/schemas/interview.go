package schemas

// RequirementsList is the schema for the requirement extraction response:
// a JSON array of non-empty requirement strings.
const RequirementsList = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "string",
    "minLength": 1
  }
}`

// QuestionCategorization is the schema for the question categorization
// response: one assignment per question, keyed by question ID.
const QuestionCategorization = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "category", "importance"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "category": {"type": "string", "minLength": 1},
      "subcategory": {"type": "string"},
      "importance": {"type": "integer", "minimum": 1, "maximum": 10}
    }
  }
}`

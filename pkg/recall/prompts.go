package recall

import "fmt"

/*
ExtractionPrompt instructs the model to convert free text into the four-key
record shape.  It is sent as the system message with the raw text as the user
message, in JSON-object mode.
*/
const ExtractionPrompt = `Convert the following text into a structured JSON object for a memory database.

Rules:
1. Extract key entity details, properties, and relationships
2. Use underscores for entity names (e.g. Python_Language)
3. Categorize the memory as one of: Semantic, Episodic, or Procedural
4. Include relevant properties and relationships

Required JSON format:
{
    "category": "memory_type",
    "name": "entity_name",
    "properties": {
        "key1": "value1",
        "key2": ["value2a", "value2b"]
    },
    "relationships": {
        "related_to": ["entity1", "entity2"],
        "part_of": ["parent_entity"]
    }
}

Respond with a single JSON object and no surrounding prose.`

/*
answerPromptTemplate grounds the answering call: the serialized context and
the question are embedded verbatim, and the rules pin the model to the
provided context only.
*/
const answerPromptTemplate = `You are a helpful assistant with access to a knowledge base.
Answer the following question based on this context:

Context:
%s

Question: %s

Rules:
1. Only use information from the provided context
2. If the information is not in the context, say so
3. Be specific and include details when available
4. Format numbers and dates clearly`

// BuildAnswerPrompt renders the answer prompt with context and question
// embedded verbatim.
func BuildAnswerPrompt(contextText, question string) string {
	return fmt.Sprintf(answerPromptTemplate, contextText, question)
}

// NoInformationMessage is the fixed response for queries against an empty
// store; the completion capability is never invoked in that case.
const NoInformationMessage = "No information available in the database."

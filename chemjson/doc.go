package chemjson

//Package chemjson implements the serialization of stoich results, so
//programs written in other languages can use stoich. An external
//program writes a request with the formulas it wants analyzed,
//one JSON object in one line, for instance to a UNIX pipe, and reads
//one JSON report per formula back.
